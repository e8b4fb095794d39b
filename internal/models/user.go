package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a student account. The wallet secret key is write-once: it
// is generated when the wallet is created and never returned to callers or
// serialized in responses.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password" json:"-"`
	StudentID          string             `bson:"studentId" json:"studentId"`
	BudgetGoal         float64            `bson:"budgetGoal" json:"budgetGoal"`
	TotalSpent         float64            `bson:"totalSpent" json:"totalSpent"`
	WalletPublicKey    string             `bson:"walletPublicKey,omitempty" json:"walletPublicKey,omitempty"`
	WalletSecretKey    string             `bson:"walletSecretKey,omitempty" json:"-"`
	WalletFunded       bool               `bson:"walletFunded" json:"walletFunded"`
	WalletHasTrustline bool               `bson:"walletHasTrustline" json:"walletHasTrustline"`
	Tokens             float64            `bson:"tokens" json:"tokens"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WalletStatus describes how far along the wallet lifecycle a user's wallet is.
// The flags are monotone: once funded or trustline-ready, never reset.
type WalletStatus struct {
	PublicKey      string `json:"walletPublicKey"`
	Funded         bool   `json:"walletFunded"`
	TrustlineReady bool   `json:"walletHasTrustline"`
}

// WalletReady reports whether the wallet can receive the reward asset.
func (u *User) WalletReady() bool {
	return u.WalletPublicKey != "" && u.WalletHasTrustline
}
