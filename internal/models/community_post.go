package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reply on a community post.
type Comment struct {
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CommunityPost is a post on the community feed, optionally sharing one of
// the author's expenses.
type CommunityPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	ExpenseID primitive.ObjectID `bson:"expenseId,omitempty" json:"expenseId,omitempty"`
	Content   string             `bson:"content" json:"content"`
	Amount    float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Likes     int                `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
