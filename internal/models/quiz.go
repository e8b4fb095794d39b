package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz is one multiple-choice question.
type Quiz struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Question      string             `bson:"question" json:"question"`
	Category      string             `bson:"category" json:"category"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer string             `bson:"correctAnswer" json:"correctAnswer,omitempty"`
	Difficulty    string             `bson:"difficulty" json:"difficulty"`
	Points        float64            `bson:"points" json:"points"`
}

// QuizAttempt records one answer submission. Immutable once created.
// PointsEarned is zero unless the answer was correct and the user was still
// under the daily correct-answer cap at submission time.
type QuizAttempt struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	QuizID       primitive.ObjectID `bson:"quizId" json:"quizId"`
	IsCorrect    bool               `bson:"isCorrect" json:"isCorrect"`
	PointsEarned float64            `bson:"pointsEarned" json:"pointsEarned"`
	Date         time.Time          `bson:"date" json:"date"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
}

// SubmitResult is the outcome of a quiz answer submission.
type SubmitResult struct {
	IsCorrect          bool    `json:"isCorrect"`
	CorrectAnswer      string  `json:"correctAnswer"`
	PointsEarned       float64 `json:"pointsEarned"`
	Message            string  `json:"message"`
	DailyAttemptsCount int64   `json:"dailyAttemptsCount"`
	DailyLimitReached  bool    `json:"dailyLimitReached"`
}

// LeaderboardEntry is one row of the quiz leaderboard.
type LeaderboardEntry struct {
	UserID         primitive.ObjectID `bson:"_id" json:"userId"`
	TotalPoints    float64            `bson:"totalPoints" json:"totalPoints"`
	CorrectAnswers int64              `bson:"correctAnswers" json:"correctAnswers"`
	Name           string             `bson:"name" json:"name"`
}

// CategoryStat is the per-category accuracy breakdown for one user.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Count    int64   `bson:"count" json:"count"`
	Correct  int64   `bson:"correct" json:"correct"`
	Accuracy float64 `bson:"accuracy" json:"accuracy"`
}

// QuizStats summarizes one user's quiz performance.
type QuizStats struct {
	TotalAttempts     int64          `json:"totalAttempts"`
	CorrectAttempts   int64          `json:"correctAttempts"`
	Accuracy          float64        `json:"accuracy"`
	TotalPoints       float64        `json:"totalPoints"`
	CategoryBreakdown []CategoryStat `json:"categoryBreakdown"`
}
