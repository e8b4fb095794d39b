package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is an item in the token bookstore. Price is in reward tokens.
type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"`
	Description string             `bson:"description" json:"description"`
	CoverImage  string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserBook records book ownership. Created only after the purchase debit has
// been confirmed on the ledger.
type UserBook struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	BookID       primitive.ObjectID `bson:"bookId" json:"bookId"`
	PurchaseDate time.Time          `bson:"purchaseDate" json:"purchaseDate"`
	TokensPaid   float64            `bson:"tokensPaid" json:"tokensPaid"`
}
