package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType tags a transaction with the kind of activity that caused it.
type ActivityType string

const (
	ActivityChallenge   ActivityType = "challenge"
	ActivityQuiz        ActivityType = "quiz"
	ActivityDailySaving ActivityType = "dailySaving"
	ActivityPurchase    ActivityType = "purchase"
	ActivityTransfer    ActivityType = "transfer"
)

// ActivityRef identifies the activity that triggered a transfer. The zero
// value means no originating activity.
type ActivityRef struct {
	Type ActivityType
	ID   primitive.ObjectID
}

// ChallengeRef references a completed challenge.
func ChallengeRef(id primitive.ObjectID) ActivityRef {
	return ActivityRef{Type: ActivityChallenge, ID: id}
}

// QuizRef references a rewarded quiz question.
func QuizRef(id primitive.ObjectID) ActivityRef {
	return ActivityRef{Type: ActivityQuiz, ID: id}
}

// DailySavingRef references a rewarded daily-saving entry.
func DailySavingRef(id primitive.ObjectID) ActivityRef {
	return ActivityRef{Type: ActivityDailySaving, ID: id}
}

// PurchaseRef references a purchased book.
func PurchaseRef(id primitive.ObjectID) ActivityRef {
	return ActivityRef{Type: ActivityPurchase, ID: id}
}

// Transaction is one confirmed transfer on the external ledger. Records are
// append-only and created only after the ledger accepted the payment; failed
// attempts are never recorded. Amount is positive for rewards and transfers
// in, negative for purchases.
type Transaction struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Amount       float64            `bson:"amount" json:"amount"`
	TxHash       string             `bson:"txHash" json:"txHash"`
	Date         time.Time          `bson:"date" json:"date"`
	ActivityType ActivityType       `bson:"activityType,omitempty" json:"activityType,omitempty"`
	ActivityID   primitive.ObjectID `bson:"activityId,omitempty" json:"activityId,omitempty"`
}
