package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge is a user-defined savings goal with a fixed token reward.
// Completed transitions false to true at most once.
type Challenge struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Title        string             `bson:"title" json:"title" binding:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Type         string             `bson:"type" json:"type"` // daily, weekly or custom
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      time.Time          `bson:"endDate" json:"endDate"`
	TargetAmount float64            `bson:"targetAmount" json:"targetAmount"`
	Completed    bool               `bson:"completed" json:"completed"`
	Reward       float64            `bson:"reward" json:"reward"`
}

// Reward records the tokens earned for completing a challenge.
type Reward struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ChallengeID primitive.ObjectID `bson:"challengeId" json:"challengeId"`
	TokenAmount float64            `bson:"tokenAmount" json:"tokenAmount"`
	DateEarned  time.Time          `bson:"dateEarned" json:"dateEarned"`
}
