package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a point-in-time copy of a class placed in a user's cart.
// Later edits to the class are not reflected here.
type CartItem struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassDetails `bson:",inline"`
	UserEmail    string    `json:"user_email" bson:"user_email"`
	AddedAt      time.Time `json:"added_at" bson:"added_at"`
}

// NewCartItem snapshots class for userEmail. The class id is not carried over.
func NewCartItem(class Class, userEmail string, now time.Time) CartItem {
	return CartItem{
		ClassDetails: class.ClassDetails,
		UserEmail:    NormalizeEmail(userEmail),
		AddedAt:      now.UTC(),
	}
}
