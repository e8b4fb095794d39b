package mongodb

import (
	"context"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ChallengeRepository implements the interface
var _ repositories.ChallengeRepository = (*ChallengeRepository)(nil)

// ChallengeRepository handles MongoDB operations for Challenge
type ChallengeRepository struct {
	collection *mongo.Collection
}

// NewChallengeRepository creates a new ChallengeRepository
func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{
		collection: db.Collection("challenges"),
	}
}

// Create inserts a new challenge
func (r *ChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	challenge.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, challenge)
	return err
}

// FindByUserID returns all challenges owned by a user
func (r *ChallengeRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Challenge, error) {
	var challenges []*models.Challenge
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &challenges); err != nil {
		return nil, err
	}
	if challenges == nil {
		challenges = []*models.Challenge{}
	}
	return challenges, nil
}

// FindByIDAndUser returns a challenge scoped to its owner
func (r *ChallengeRepository) FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&challenge)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &challenge, nil
}

// Update updates an existing challenge
func (r *ChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	filter := bson.M{"_id": challenge.ID}
	update := bson.M{"$set": challenge}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// Compile-time check to ensure RewardRepository implements the interface
var _ repositories.RewardRepository = (*RewardRepository)(nil)

// RewardRepository handles MongoDB operations for challenge Reward entries
type RewardRepository struct {
	collection *mongo.Collection
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{
		collection: db.Collection("rewards"),
	}
}

// Create inserts a new reward entry
func (r *RewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	reward.ID = primitive.NewObjectID()
	if reward.DateEarned.IsZero() {
		reward.DateEarned = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, reward)
	return err
}

// FindByUserID returns all reward entries for a user
func (r *RewardRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Reward, error) {
	var rewards []*models.Reward
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = []*models.Reward{}
	}
	return rewards, nil
}
