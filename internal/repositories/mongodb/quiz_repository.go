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

// Compile-time check to ensure QuizRepository implements the interface
var _ repositories.QuizRepository = (*QuizRepository)(nil)

// QuizRepository handles MongoDB operations for quiz questions
type QuizRepository struct {
	collection *mongo.Collection
}

// NewQuizRepository creates a new QuizRepository
func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{
		collection: db.Collection("quizzes"),
	}
}

// FindByID finds a quiz question by ID
func (r *QuizRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindAll returns every quiz question, correct answers included (admin use)
func (r *QuizRepository) FindAll(ctx context.Context) ([]*models.Quiz, error) {
	var quizzes []*models.Quiz
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []*models.Quiz{}
	}
	return quizzes, nil
}

// FindRandom samples count random questions, optionally by category, with the
// correct answer projected away so it never reaches the client.
func (r *QuizRepository) FindRandom(ctx context.Context, category string, count int) ([]*models.Quiz, error) {
	match := bson.M{}
	if category != "" {
		match["category"] = category
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sample", Value: bson.M{"size": count}}},
		bson.D{{Key: "$project", Value: bson.M{"correctAnswer": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quizzes []*models.Quiz
	if err = cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []*models.Quiz{}
	}
	return quizzes, nil
}

// InsertMany inserts a batch of quiz questions
func (r *QuizRepository) InsertMany(ctx context.Context, quizzes []*models.Quiz) error {
	docs := make([]interface{}, 0, len(quizzes))
	for _, quiz := range quizzes {
		quiz.ID = primitive.NewObjectID()
		docs = append(docs, quiz)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Count returns the number of quiz questions
func (r *QuizRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Compile-time check to ensure QuizAttemptRepository implements the interface
var _ repositories.QuizAttemptRepository = (*QuizAttemptRepository)(nil)

// QuizAttemptRepository handles MongoDB operations for QuizAttempt
type QuizAttemptRepository struct {
	collection *mongo.Collection
}

// NewQuizAttemptRepository creates a new QuizAttemptRepository
func NewQuizAttemptRepository(db *mongo.Database) *QuizAttemptRepository {
	return &QuizAttemptRepository{
		collection: db.Collection("quiz_attempts"),
	}
}

// Create inserts a new attempt record
func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	attempt.ID = primitive.NewObjectID()
	if attempt.Date.IsZero() {
		attempt.Date = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, attempt)
	return err
}

// CountCorrectBetween counts a user's correct attempts in [start, end)
func (r *QuizAttemptRepository) CountCorrectBetween(ctx context.Context, userID primitive.ObjectID, start, end time.Time) (int64, error) {
	filter := bson.M{
		"userId":    userID,
		"isCorrect": true,
		"date":      bson.M{"$gte": start, "$lt": end},
	}
	return r.collection.CountDocuments(ctx, filter)
}

// Leaderboard aggregates the top scorers by total points earned
func (r *QuizAttemptRepository) Leaderboard(ctx context.Context, limit int64) ([]*models.LeaderboardEntry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isCorrect": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$userId",
			"totalPoints":    bson.M{"$sum": "$pointsEarned"},
			"correctAnswers": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalPoints": -1}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":            1,
			"totalPoints":    1,
			"correctAnswers": 1,
			"name":           "$user.name",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.LeaderboardEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}
	return entries, nil
}

// CountByUser counts all attempts by a user
func (r *QuizAttemptRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID})
}

// CountCorrectByUser counts a user's correct attempts
func (r *QuizAttemptRepository) CountCorrectByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID, "isCorrect": true})
}

// SumPointsByUser totals the points a user has earned
func (r *QuizAttemptRepository) SumPointsByUser(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalPoints": bson.M{"$sum": "$pointsEarned"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalPoints float64 `bson:"totalPoints"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalPoints, nil
}

// CategoryBreakdown aggregates attempt counts and accuracy per category
func (r *QuizAttemptRepository) CategoryBreakdown(ctx context.Context, userID primitive.ObjectID) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
			"correct": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$isCorrect", true}}, 1, 0},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"category": "$_id",
			"count":    1,
			"correct":  1,
			"accuracy": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$count", 0}},
				0,
				bson.M{"$divide": bson.A{"$correct", "$count"}},
			}},
			"_id": 0,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.CategoryStat
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.CategoryStat{}
	}
	return stats, nil
}
