package services

import (
	"context"
	"errors"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookService runs the token bookstore. Purchases debit the buyer's wallet on
// the ledger before the ownership record is written; a failed debit leaves no
// ownership.
type BookService struct {
	bookRepo     repositories.BookRepository
	userBookRepo repositories.UserBookRepository
	tokens       *TokenService
}

// NewBookService creates a new BookService
func NewBookService(bookRepo repositories.BookRepository, userBookRepo repositories.UserBookRepository, tokens *TokenService) *BookService {
	return &BookService{
		bookRepo:     bookRepo,
		userBookRepo: userBookRepo,
		tokens:       tokens,
	}
}

// List returns all active books.
func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.FindActive(ctx)
}

// Get returns one book by id, active or not.
func (s *BookService) Get(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	return s.bookRepo.FindByID(ctx, id)
}

// Purchase buys a book for the user. Order matters: the ownership check runs
// first so an owned book never costs anything, then the ledger debit, and the
// ownership record only after the debit confirmed.
func (s *BookService) Purchase(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBook, error) {
	book, err := s.bookRepo.FindActiveByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	existing, err := s.userBookRepo.FindByUserAndBook(ctx, userID, bookID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyProcessed
	}

	if _, err := s.tokens.Spend(ctx, userID, book.Price, models.PurchaseRef(book.ID)); err != nil {
		return nil, err
	}

	userBook := &models.UserBook{
		UserID:       userID,
		BookID:       book.ID,
		PurchaseDate: time.Now(),
		TokensPaid:   book.Price,
	}
	if err := s.userBookRepo.Create(ctx, userBook); err != nil {
		return nil, err
	}
	return userBook, nil
}

// Owned returns the user's purchased books, newest first.
func (s *BookService) Owned(ctx context.Context, userID primitive.ObjectID) ([]*models.UserBook, error) {
	return s.userBookRepo.FindByUserID(ctx, userID)
}

// Seed inserts the initial catalog. Refuses to run if any books exist.
func (s *BookService) Seed(ctx context.Context) error {
	count, err := s.bookRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyProcessed
	}
	return s.bookRepo.InsertMany(ctx, seedBooks())
}

func seedBooks() []*models.Book {
	return []*models.Book{
		{
			Title:       "Personal Finance for Students",
			Author:      "Jane Doe",
			Description: "A comprehensive guide to managing your finances as a student, covering budgeting, saving, and investing basics.",
			CoverImage:  "https://via.placeholder.com/300x400?text=Personal+Finance",
			Price:       50,
			Category:    "Finance",
			IsActive:    true,
		},
		{
			Title:       "Budgeting 101",
			Author:      "John Smith",
			Description: "Learn the fundamentals of creating and sticking to a budget that works for your lifestyle.",
			CoverImage:  "https://via.placeholder.com/300x400?text=Budgeting+101",
			Price:       30,
			Category:    "Budgeting",
			IsActive:    true,
		},
		{
			Title:       "Investing for Beginners",
			Author:      "Michael Johnson",
			Description: "Start your investment journey with this easy-to-understand guide to the stock market and other investment vehicles.",
			CoverImage:  "https://via.placeholder.com/300x400?text=Investing",
			Price:       75,
			Category:    "Investing",
			IsActive:    true,
		},
		{
			Title:       "Debt-Free Living",
			Author:      "Sarah Williams",
			Description: "Strategies to eliminate debt and achieve financial freedom, with practical steps and real-life examples.",
			CoverImage:  "https://via.placeholder.com/300x400?text=Debt+Free",
			Price:       45,
			Category:    "Finance",
			IsActive:    true,
		},
		{
			Title:       "The Psychology of Money",
			Author:      "Robert Brown",
			Description: "Understanding the emotional and psychological aspects of financial decisions and how to make better choices.",
			CoverImage:  "https://via.placeholder.com/300x400?text=Psychology+of+Money",
			Price:       60,
			Category:    "Finance",
			IsActive:    true,
		},
	}
}
