package mongodb

import (
	"context"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure BookRepository implements the interface
var _ repositories.BookRepository = (*BookRepository)(nil)

// BookRepository handles MongoDB operations for Book
type BookRepository struct {
	collection *mongo.Collection
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{
		collection: db.Collection("books"),
	}
}

// FindActive returns all books currently offered in the store
func (r *BookRepository) FindActive(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book
	cursor, err := r.collection.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []*models.Book{}
	}
	return books, nil
}

// FindByID finds a book by ID
func (r *BookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindActiveByID finds a book by ID that is still offered
func (r *BookRepository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "isActive": true}).Decode(&book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// InsertMany inserts a batch of books
func (r *BookRepository) InsertMany(ctx context.Context, books []*models.Book) error {
	now := time.Now()
	docs := make([]interface{}, 0, len(books))
	for _, book := range books {
		book.ID = primitive.NewObjectID()
		book.CreatedAt = now
		book.UpdatedAt = now
		docs = append(docs, book)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Count returns the number of books
func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Compile-time check to ensure UserBookRepository implements the interface
var _ repositories.UserBookRepository = (*UserBookRepository)(nil)

// UserBookRepository handles MongoDB operations for book ownership records
type UserBookRepository struct {
	collection *mongo.Collection
}

// NewUserBookRepository creates a new UserBookRepository
func NewUserBookRepository(db *mongo.Database) *UserBookRepository {
	return &UserBookRepository{
		collection: db.Collection("user_books"),
	}
}

// Create inserts a new ownership record
func (r *UserBookRepository) Create(ctx context.Context, userBook *models.UserBook) error {
	userBook.ID = primitive.NewObjectID()
	if userBook.PurchaseDate.IsZero() {
		userBook.PurchaseDate = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, userBook)
	return err
}

// FindByUserAndBook returns the ownership record for a (user, book) pair
func (r *UserBookRepository) FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBook, error) {
	var userBook models.UserBook
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "bookId": bookID}).Decode(&userBook)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &userBook, nil
}

// FindByUserID returns a user's purchases, newest first
func (r *UserBookRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.UserBook, error) {
	var userBooks []*models.UserBook
	findOptions := options.Find().SetSort(bson.D{{Key: "purchaseDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &userBooks); err != nil {
		return nil, err
	}
	if userBooks == nil {
		userBooks = []*models.UserBook{}
	}
	return userBooks, nil
}
