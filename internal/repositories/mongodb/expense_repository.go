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

// Compile-time check to ensure ExpenseRepository implements the interface
var _ repositories.ExpenseRepository = (*ExpenseRepository)(nil)

// ExpenseRepository handles MongoDB operations for Expense
type ExpenseRepository struct {
	collection *mongo.Collection
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{
		collection: db.Collection("expenses"),
	}
}

// Create inserts a new expense
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	expense.ID = primitive.NewObjectID()
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, expense)
	return err
}

// FindByUserID returns a user's expenses, newest first
func (r *ExpenseRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Expense, error) {
	var expenses []*models.Expense
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	return expenses, nil
}

// FindByIDAndUser returns an expense scoped to its owner
func (r *ExpenseRepository) FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Expense, error) {
	var expense models.Expense
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&expense)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &expense, nil
}

// Delete removes an expense owned by the user
func (r *ExpenseRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
