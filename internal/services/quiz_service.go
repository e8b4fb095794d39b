package services

import (
	"context"
	"time"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"github.com/fintrack/edutoken-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizService serves quiz questions and scores answer submissions. Correct
// answers earn tokens up to a daily cap; every attempt is recorded whether or
// not it was rewarded.
type QuizService struct {
	quizRepo    repositories.QuizRepository
	attemptRepo repositories.QuizAttemptRepository
	userRepo    repositories.UserRepository
	tokens      *TokenService
	locker      *utils.UserLocker
	dailyCap    int
}

// NewQuizService creates a new QuizService
func NewQuizService(quizRepo repositories.QuizRepository, attemptRepo repositories.QuizAttemptRepository, userRepo repositories.UserRepository, tokens *TokenService, locker *utils.UserLocker, cfg *config.Config) *QuizService {
	return &QuizService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		userRepo:    userRepo,
		tokens:      tokens,
		locker:      locker,
		dailyCap:    cfg.Rewards.QuizDailyCap,
	}
}

// All returns every question including correct answers. Admin use only.
func (s *QuizService) All(ctx context.Context) ([]*models.Quiz, error) {
	return s.quizRepo.FindAll(ctx)
}

// Random samples count questions with the correct answers stripped,
// optionally filtered by category.
func (s *QuizService) Random(ctx context.Context, category string, count int) ([]*models.Quiz, error) {
	if count <= 0 {
		count = 5
	}
	return s.quizRepo.FindRandom(ctx, category, count)
}

// Submit scores one answer. The attempt is always recorded; points and
// tokens are granted only for a correct answer while the user is under the
// daily correct-answer cap. A rewardable answer from a user without a wallet
// fails outright after the attempt is recorded. Serialized per user so two
// concurrent submissions cannot both pass the cap check.
func (s *QuizService) Submit(ctx context.Context, userID primitive.ObjectID, quizID primitive.ObjectID, answer string) (*models.SubmitResult, error) {
	unlock := s.locker.Lock(userID.Hex())
	defer unlock()

	quiz, err := s.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	isCorrect := answer == quiz.CorrectAnswer

	today := utils.DayStart(time.Now())
	dailyCorrect, err := s.attemptRepo.CountCorrectBetween(ctx, userID, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	rewardAllowed := isCorrect && dailyCorrect < int64(s.dailyCap)
	pointsEarned := 0.0
	if rewardAllowed {
		pointsEarned = quiz.Points
	}

	attempt := &models.QuizAttempt{
		UserID:       userID,
		QuizID:       quiz.ID,
		IsCorrect:    isCorrect,
		PointsEarned: pointsEarned,
		Category:     quiz.Category,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, err
	}

	if rewardAllowed {
		if _, err := s.tokens.Reward(ctx, userID, pointsEarned, models.QuizRef(quiz.ID)); err != nil {
			return nil, err
		}
	}

	message := "Incorrect answer"
	if isCorrect {
		message = "Correct answer!"
	}
	correctInc := int64(0)
	if isCorrect {
		correctInc = 1
	}
	return &models.SubmitResult{
		IsCorrect:          isCorrect,
		CorrectAnswer:      quiz.CorrectAnswer,
		PointsEarned:       pointsEarned,
		Message:            message,
		DailyAttemptsCount: dailyCorrect + correctInc,
		DailyLimitReached:  dailyCorrect >= int64(s.dailyCap),
	}, nil
}

// Leaderboard returns the top performers by total points earned.
func (s *QuizService) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	return s.attemptRepo.Leaderboard(ctx, 10)
}

// Stats summarizes one user's attempts, accuracy and per-category breakdown.
func (s *QuizService) Stats(ctx context.Context, userID primitive.ObjectID) (*models.QuizStats, error) {
	total, err := s.attemptRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	correct, err := s.attemptRepo.CountCorrectByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	points, err := s.attemptRepo.SumPointsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.attemptRepo.CategoryBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}
	return &models.QuizStats{
		TotalAttempts:     total,
		CorrectAttempts:   correct,
		Accuracy:          accuracy,
		TotalPoints:       points,
		CategoryBreakdown: breakdown,
	}, nil
}

// Seed inserts the built-in question bank. Refuses to run if any questions
// already exist.
func (s *QuizService) Seed(ctx context.Context) (int, error) {
	count, err := s.quizRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrAlreadyProcessed
	}
	if err := s.quizRepo.InsertMany(ctx, seedQuizzes()); err != nil {
		return 0, err
	}
	return len(seedQuizzes()), nil
}

func seedQuizzes() []*models.Quiz {
	return []*models.Quiz{
		{
			Question:      "What is the term for money set aside for emergencies?",
			Category:      "Finance Basics",
			Options:       []string{"Emergency Fund", "Savings Account", "Checking Account", "Money Market"},
			CorrectAnswer: "Emergency Fund",
			Difficulty:    "easy",
			Points:        5,
		},
		{
			Question:      "What does APR stand for?",
			Category:      "Finance Basics",
			Options:       []string{"Annual Percentage Rate", "Approved Payment Return", "Asset Protection Reserve", "Annual Payment Reduction"},
			CorrectAnswer: "Annual Percentage Rate",
			Difficulty:    "easy",
			Points:        5,
		},
		{
			Question:      "Which of these is NOT a type of retirement account?",
			Category:      "Investing",
			Options:       []string{"401(k)", "IRA", "Roth IRA", "FDR"},
			CorrectAnswer: "FDR",
			Difficulty:    "medium",
			Points:        10,
		},
		{
			Question:      "What is the rule of 72 used for?",
			Category:      "Investing",
			Options:       []string{"Calculating how long it takes money to double", "Determining tax brackets", "Calculating mortgage payments", "Setting retirement goals"},
			CorrectAnswer: "Calculating how long it takes money to double",
			Difficulty:    "medium",
			Points:        10,
		},
		{
			Question:      "What is the term for the gradual increase in the general price level of goods and services?",
			Category:      "Economics",
			Options:       []string{"Inflation", "Recession", "Depression", "Stagnation"},
			CorrectAnswer: "Inflation",
			Difficulty:    "easy",
			Points:        5,
		},
		{
			Question:      "Which of these is considered a liquid asset?",
			Category:      "Finance Basics",
			Options:       []string{"Cash", "Real Estate", "Collectibles", "Business Equipment"},
			CorrectAnswer: "Cash",
			Difficulty:    "easy",
			Points:        5,
		},
		{
			Question:      "What is the term for the decrease in value of an asset over time?",
			Category:      "Finance Basics",
			Options:       []string{"Depreciation", "Amortization", "Appreciation", "Inflation"},
			CorrectAnswer: "Depreciation",
			Difficulty:    "medium",
			Points:        10,
		},
		{
			Question:      "What is the primary purpose of a budget?",
			Category:      "Budgeting",
			Options:       []string{"Track income and expenses", "Increase debt", "Avoid saving money", "Increase spending"},
			CorrectAnswer: "Track income and expenses",
			Difficulty:    "easy",
			Points:        5,
		},
		{
			Question:      "What is the 50/30/20 rule in budgeting?",
			Category:      "Budgeting",
			Options:       []string{"50% needs, 30% wants, 20% savings", "50% savings, 30% needs, 20% wants", "50% wants, 30% savings, 20% needs", "50% income, 30% expenses, 20% debt"},
			CorrectAnswer: "50% needs, 30% wants, 20% savings",
			Difficulty:    "medium",
			Points:        10,
		},
		{
			Question:      "What is the term for the total value of all goods and services produced within a country in a year?",
			Category:      "Economics",
			Options:       []string{"GDP", "GNP", "CPI", "PPP"},
			CorrectAnswer: "GDP",
			Difficulty:    "medium",
			Points:        10,
		},
		{
			Question:      "What is a bull market?",
			Category:      "Investing",
			Options:       []string{"A market experiencing prolonged price increases", "A market experiencing prolonged price decreases", "A market with high volatility", "A market with low trading volume"},
			CorrectAnswer: "A market experiencing prolonged price increases",
			Difficulty:    "medium",
			Points:        10,
		},
		{
			Question:      "What is the term for the risk that an investment's value will fluctuate due to changes in market factors?",
			Category:      "Investing",
			Options:       []string{"Market Risk", "Credit Risk", "Liquidity Risk", "Operational Risk"},
			CorrectAnswer: "Market Risk",
			Difficulty:    "hard",
			Points:        15,
		},
		{
			Question:      "What is the term for the strategy of investing in a wide range of assets to reduce risk?",
			Category:      "Investing",
			Options:       []string{"Diversification", "Leverage", "Hedging", "Arbitrage"},
			CorrectAnswer: "Diversification",
			Difficulty:    "medium",
			Points:        10,
		},
		{
			Question:      "What is the difference between a traditional IRA and a Roth IRA?",
			Category:      "Investing",
			Options:       []string{"Traditional is taxed on withdrawal, Roth is taxed on contribution", "Traditional has higher contribution limits than Roth", "Roth is for employers, Traditional is for individuals", "There is no difference"},
			CorrectAnswer: "Traditional is taxed on withdrawal, Roth is taxed on contribution",
			Difficulty:    "hard",
			Points:        15,
		},
		{
			Question:      "What is the term for the additional amount paid to bondholders as compensation for credit risk?",
			Category:      "Investing",
			Options:       []string{"Risk Premium", "Coupon Rate", "Yield", "Par Value"},
			CorrectAnswer: "Risk Premium",
			Difficulty:    "hard",
			Points:        15,
		},
	}
}
