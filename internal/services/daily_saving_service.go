package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"github.com/fintrack/edutoken-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// financialQuotes are the predefined financial wellness quotes returned
// alongside daily-saving responses.
var financialQuotes = []models.Quote{
	{
		Text:     "Do not save what is left after spending, but spend what is left after saving.",
		Author:   "Warren Buffett",
		Category: "Saving",
	},
	{
		Text:     "A budget is telling your money where to go instead of wondering where it went.",
		Author:   "Dave Ramsey",
		Category: "Budgeting",
	},
	{
		Text:     "The habit of saving is itself an education; it fosters every virtue, teaches self-denial, cultivates the sense of order, trains to forethought, and so broadens the mind.",
		Author:   "T.T. Munger",
		Category: "Saving",
	},
	{
		Text:     "Financial peace isn't the acquisition of stuff. It's learning to live on less than you make, so you can give money back and have money to invest.",
		Author:   "Dave Ramsey",
		Category: "Finance",
	},
	{
		Text:     "Never spend your money before you have it.",
		Author:   "Thomas Jefferson",
		Category: "Budgeting",
	},
	{
		Text:     "The price of anything is the amount of life you exchange for it.",
		Author:   "Henry David Thoreau",
		Category: "Finance",
	},
	{
		Text:     "It's not how much money you make, but how much money you keep, how hard it works for you, and how many generations you keep it for.",
		Author:   "Robert Kiyosaki",
		Category: "Investing",
	},
	{
		Text:     "An investment in knowledge pays the best interest.",
		Author:   "Benjamin Franklin",
		Category: "Education",
	},
	{
		Text:     "Money is only a tool. It will take you wherever you wish, but it will not replace you as the driver.",
		Author:   "Ayn Rand",
		Category: "Finance",
	},
	{
		Text:     "The individual investor should act consistently as an investor and not as a speculator.",
		Author:   "Benjamin Graham",
		Category: "Investing",
	},
}

// ToggleResult is the outcome of a daily-saving toggle, bundled with a quote.
type ToggleResult struct {
	DailySaving *models.DailySaving `json:"dailySaving"`
	Quote       models.Quote        `json:"quote"`
}

// TodayStatus bundles today's entry (zero value if none) with a quote.
type TodayStatus struct {
	DailySaving *models.DailySaving `json:"dailySaving"`
	Quote       models.Quote        `json:"quote"`
}

// SavingHistory is the recent entries together with the derived streak.
type SavingHistory struct {
	History []*models.DailySaving `json:"history"`
	Streak  int                   `json:"streak"`
}

// DailySavingService tracks one saving entry per user per calendar day and
// pays the daily reward the first time an entry flips to saved. The streak
// bonus applies when yesterday's entry was also saved.
type DailySavingService struct {
	savingRepo  repositories.DailySavingRepository
	userRepo    repositories.UserRepository
	tokens      *TokenService
	locker      *utils.UserLocker
	baseReward  float64
	streakBonus float64
}

// NewDailySavingService creates a new DailySavingService
func NewDailySavingService(savingRepo repositories.DailySavingRepository, userRepo repositories.UserRepository, tokens *TokenService, locker *utils.UserLocker, cfg *config.Config) *DailySavingService {
	return &DailySavingService{
		savingRepo:  savingRepo,
		userRepo:    userRepo,
		tokens:      tokens,
		locker:      locker,
		baseReward:  cfg.Rewards.DailySavingBase,
		streakBonus: cfg.Rewards.DailyStreakBonus,
	}
}

// Toggle records whether the user saved money today. Marking saved pays the
// daily reward at most once per day; the is-rewarded flag never resets, even
// if the entry is later toggled back to not saved. Users without a ready
// wallet keep their entry but receive no tokens. Serialized per user so two
// rapid toggles cannot both pass the is-rewarded check.
func (s *DailySavingService) Toggle(ctx context.Context, userID primitive.ObjectID, didSaveToday bool, note string) (*ToggleResult, error) {
	unlock := s.locker.Lock(userID.Hex())
	defer unlock()

	today := utils.DayStart(time.Now())

	entry, err := s.savingRepo.FindByUserAndDay(ctx, userID, today)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		entry = &models.DailySaving{
			UserID: userID,
			Date:   today,
		}
		entry.DidSaveToday = didSaveToday
		if note != "" {
			entry.Note = note
		}
		if err := s.savingRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	} else {
		entry.DidSaveToday = didSaveToday
		if note != "" {
			entry.Note = note
		}
	}

	if didSaveToday && !entry.IsRewarded {
		s.rewardIfEligible(ctx, userID, entry, today)
	}

	if err := s.savingRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return &ToggleResult{DailySaving: entry, Quote: RandomQuote()}, nil
}

// rewardIfEligible pays the daily reward for entry. A failed payout is logged
// and swallowed; the entry stays unrewarded so a later toggle can retry.
func (s *DailySavingService) rewardIfEligible(ctx context.Context, userID primitive.ObjectID, entry *models.DailySaving, today time.Time) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || !user.WalletReady() {
		return
	}

	amount := s.baseReward
	yesterday, err := s.savingRepo.FindByUserAndDay(ctx, userID, today.AddDate(0, 0, -1))
	if err == nil && yesterday.DidSaveToday {
		amount += s.streakBonus
	}

	if _, err := s.tokens.Reward(ctx, userID, amount, models.DailySavingRef(entry.ID)); err != nil {
		log.Printf("[WARN] daily saving reward failed for user %s: %v", userID.Hex(), err)
		return
	}
	entry.TokensRewarded = amount
	entry.IsRewarded = true
}

// Today returns today's entry, or an unsaved placeholder if none exists yet.
func (s *DailySavingService) Today(ctx context.Context, userID primitive.ObjectID) (*TodayStatus, error) {
	entry, err := s.savingRepo.FindByUserAndDay(ctx, userID, utils.DayStart(time.Now()))
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		entry = &models.DailySaving{DidSaveToday: false, IsRewarded: false}
	}
	return &TodayStatus{DailySaving: entry, Quote: RandomQuote()}, nil
}

// History returns the last 30 days of entries, newest first, with the
// current streak derived from them.
func (s *DailySavingService) History(ctx context.Context, userID primitive.ObjectID) (*SavingHistory, error) {
	entries, err := s.savingRepo.FindRecentByUser(ctx, userID, 30)
	if err != nil {
		return nil, err
	}
	return &SavingHistory{
		History: entries,
		Streak:  utils.CalculateStreak(entries, time.Now()),
	}, nil
}

// Quotes returns all predefined financial wellness quotes.
func (s *DailySavingService) Quotes() []models.Quote {
	return financialQuotes
}

// RandomQuote picks one of the predefined quotes.
func RandomQuote() models.Quote {
	return financialQuotes[rand.Intn(len(financialQuotes))]
}
