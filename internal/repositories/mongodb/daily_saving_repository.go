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

// Compile-time check to ensure DailySavingRepository implements the interface
var _ repositories.DailySavingRepository = (*DailySavingRepository)(nil)

// DailySavingRepository handles MongoDB operations for DailySaving
type DailySavingRepository struct {
	collection *mongo.Collection
}

// NewDailySavingRepository creates a new DailySavingRepository and ensures the
// unique (userId, date) index that enforces one entry per user per day.
func NewDailySavingRepository(db *mongo.Database) *DailySavingRepository {
	collection := db.Collection("daily_savings")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Best effort; index creation failures surface on first conflicting insert.
	_, _ = collection.Indexes().CreateOne(ctx, indexModel)

	return &DailySavingRepository{collection: collection}
}

// Create inserts a new daily-saving entry
func (r *DailySavingRepository) Create(ctx context.Context, entry *models.DailySaving) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// Update updates an existing daily-saving entry
func (r *DailySavingRepository) Update(ctx context.Context, entry *models.DailySaving) error {
	entry.UpdatedAt = time.Now()
	filter := bson.M{"_id": entry.ID}
	update := bson.M{"$set": entry}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// FindByUserAndDay returns the entry within the calendar day starting at dayStart
func (r *DailySavingRepository) FindByUserAndDay(ctx context.Context, userID primitive.ObjectID, dayStart time.Time) (*models.DailySaving, error) {
	var entry models.DailySaving
	filter := bson.M{
		"userId": userID,
		"date": bson.M{
			"$gte": dayStart,
			"$lt":  dayStart.Add(24 * time.Hour),
		},
	}
	err := r.collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &entry, nil
}

// FindRecentByUser returns a user's most recent entries, newest first
func (r *DailySavingRepository) FindRecentByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.DailySaving, error) {
	var entries []*models.DailySaving
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.DailySaving{}
	}
	return entries, nil
}
