package services

import (
	"context"
	"log"
	"time"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeService manages user-defined savings challenges and their one-time
// completion rewards.
type ChallengeService struct {
	challengeRepo repositories.ChallengeRepository
	rewardRepo    repositories.RewardRepository
	tokens        *TokenService
	defaultReward float64
}

// NewChallengeService creates a new ChallengeService
func NewChallengeService(challengeRepo repositories.ChallengeRepository, rewardRepo repositories.RewardRepository, tokens *TokenService, cfg *config.Config) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		rewardRepo:    rewardRepo,
		tokens:        tokens,
		defaultReward: cfg.Rewards.ChallengeDefault,
	}
}

// Create stores a new challenge for the user. A missing reward falls back to
// the configured default.
func (s *ChallengeService) Create(ctx context.Context, userID primitive.ObjectID, challenge *models.Challenge) (*models.Challenge, error) {
	challenge.UserID = userID
	challenge.Completed = false
	if challenge.Reward <= 0 {
		challenge.Reward = s.defaultReward
	}
	if challenge.StartDate.IsZero() {
		challenge.StartDate = time.Now()
	}
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// List returns all of the user's challenges.
func (s *ChallengeService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.Challenge, error) {
	return s.challengeRepo.FindByUserID(ctx, userID)
}

// Get returns one challenge, scoped to its owner.
func (s *ChallengeService) Get(ctx context.Context, id, userID primitive.ObjectID) (*models.Challenge, error) {
	return s.challengeRepo.FindByIDAndUser(ctx, id, userID)
}

// Rewards returns the user's earned challenge rewards.
func (s *ChallengeService) Rewards(ctx context.Context, userID primitive.ObjectID) ([]*models.Reward, error) {
	return s.rewardRepo.FindByUserID(ctx, userID)
}

// Complete marks a challenge completed and pays out its reward. A challenge
// already completed is rejected with ErrAlreadyProcessed. The completed flag
// and the reward entry are persisted before the payout is attempted and are
// never rolled back. The payout itself is best effort: a wallet that cannot
// receive tokens yet or a ledger failure is logged and swallowed, and the
// completion stands with a nil transaction.
func (s *ChallengeService) Complete(ctx context.Context, id, userID primitive.ObjectID) (*models.Challenge, *models.Transaction, error) {
	challenge, err := s.challengeRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	if challenge.Completed {
		return nil, nil, ErrAlreadyProcessed
	}

	challenge.Completed = true
	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, nil, err
	}

	reward := &models.Reward{
		UserID:      userID,
		ChallengeID: challenge.ID,
		TokenAmount: challenge.Reward,
		DateEarned:  time.Now(),
	}
	if err := s.rewardRepo.Create(ctx, reward); err != nil {
		return nil, nil, err
	}

	tx, err := s.tokens.Reward(ctx, userID, challenge.Reward, models.ChallengeRef(challenge.ID))
	if err != nil {
		log.Printf("[WARN] challenge reward payout failed for user %s: %v", userID.Hex(), err)
		return challenge, nil, nil
	}

	return challenge, tx, nil
}
