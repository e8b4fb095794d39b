package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailySaving is one entry per user per calendar day, enforced by a unique
// compound index on (userId, date). IsRewarded transitions false to true at
// most once; TokensRewarded is set exactly when that happens.
type DailySaving struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Date           time.Time          `bson:"date" json:"date"`
	DidSaveToday   bool               `bson:"didSaveToday" json:"didSaveToday"`
	Note           string             `bson:"note,omitempty" json:"note,omitempty"`
	TokensRewarded float64            `bson:"tokensRewarded" json:"tokensRewarded"`
	IsRewarded     bool               `bson:"isRewarded" json:"isRewarded"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Quote is a financial wellness quote shown alongside daily-saving responses.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}
