package repositories

import (
	"context"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// FindByIDWithSecret also loads the wallet secret key, which FindByID
	// never returns. Only the wallet lifecycle and purchase paths use it.
	FindByIDWithSecret(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// IncrementTokens atomically adjusts the cached token balance. Delta may
	// be negative for purchases.
	IncrementTokens(ctx context.Context, id primitive.ObjectID, delta float64) error
}

// TransactionRepository defines the interface for the internal transfer log.
// The log is append-only: no update or delete operation exists.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.Transaction, error)
}

// DailySavingRepository defines the interface for daily-saving entries
type DailySavingRepository interface {
	Create(ctx context.Context, entry *models.DailySaving) error
	Update(ctx context.Context, entry *models.DailySaving) error
	// FindByUserAndDay returns the entry whose date falls inside the calendar
	// day starting at dayStart, or mongo.ErrNoDocuments.
	FindByUserAndDay(ctx context.Context, userID primitive.ObjectID, dayStart time.Time) (*models.DailySaving, error)
	FindRecentByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.DailySaving, error)
}

// ChallengeRepository defines the interface for challenge data operations
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Challenge, error)
	FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Challenge, error)
	Update(ctx context.Context, challenge *models.Challenge) error
}

// RewardRepository defines the interface for challenge reward entries
type RewardRepository interface {
	Create(ctx context.Context, reward *models.Reward) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Reward, error)
}

// QuizRepository defines the interface for quiz question operations
type QuizRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error)
	FindAll(ctx context.Context) ([]*models.Quiz, error)
	// FindRandom samples count questions, optionally filtered by category,
	// with the correct answer stripped.
	FindRandom(ctx context.Context, category string, count int) ([]*models.Quiz, error)
	InsertMany(ctx context.Context, quizzes []*models.Quiz) error
	Count(ctx context.Context) (int64, error)
}

// QuizAttemptRepository defines the interface for quiz attempt operations
type QuizAttemptRepository interface {
	Create(ctx context.Context, attempt *models.QuizAttempt) error
	// CountCorrectBetween counts a user's correct attempts in [start, end).
	CountCorrectBetween(ctx context.Context, userID primitive.ObjectID, start, end time.Time) (int64, error)
	Leaderboard(ctx context.Context, limit int64) ([]*models.LeaderboardEntry, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	CountCorrectByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	SumPointsByUser(ctx context.Context, userID primitive.ObjectID) (float64, error)
	CategoryBreakdown(ctx context.Context, userID primitive.ObjectID) ([]models.CategoryStat, error)
}

// BookRepository defines the interface for bookstore operations
type BookRepository interface {
	FindActive(ctx context.Context) ([]*models.Book, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	InsertMany(ctx context.Context, books []*models.Book) error
	Count(ctx context.Context) (int64, error)
}

// UserBookRepository defines the interface for book ownership records
type UserBookRepository interface {
	Create(ctx context.Context, userBook *models.UserBook) error
	FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBook, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.UserBook, error)
}

// CommunityPostRepository defines the interface for community feed operations
type CommunityPostRepository interface {
	Create(ctx context.Context, post *models.CommunityPost) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommunityPost, error)
	FindRecent(ctx context.Context, limit int64) ([]*models.CommunityPost, error)
	Update(ctx context.Context, post *models.CommunityPost) error
}

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Expense, error)
	FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Expense, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
