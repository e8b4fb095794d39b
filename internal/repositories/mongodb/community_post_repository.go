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

// Compile-time check to ensure CommunityPostRepository implements the interface
var _ repositories.CommunityPostRepository = (*CommunityPostRepository)(nil)

// CommunityPostRepository handles MongoDB operations for CommunityPost
type CommunityPostRepository struct {
	collection *mongo.Collection
}

// NewCommunityPostRepository creates a new CommunityPostRepository
func NewCommunityPostRepository(db *mongo.Database) *CommunityPostRepository {
	return &CommunityPostRepository{
		collection: db.Collection("community_posts"),
	}
}

// Create inserts a new post
func (r *CommunityPostRepository) Create(ctx context.Context, post *models.CommunityPost) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// FindByID finds a post by ID
func (r *CommunityPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindRecent returns the newest posts, bounded by limit
func (r *CommunityPostRepository) FindRecent(ctx context.Context, limit int64) ([]*models.CommunityPost, error) {
	var posts []*models.CommunityPost
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.CommunityPost{}
	}
	return posts, nil
}

// Update updates an existing post (likes, comments)
func (r *CommunityPostRepository) Update(ctx context.Context, post *models.CommunityPost) error {
	post.UpdatedAt = time.Now()
	filter := bson.M{"_id": post.ID}
	update := bson.M{"$set": post}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}
