package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the receipt stored once a payment intent has been confirmed.
// It is never modified after insertion.
type Payment struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail       string             `json:"user_email" bson:"user_email"`
	UserName        string             `json:"user_name,omitempty" bson:"user_name,omitempty"`
	TransactionID   string             `json:"transaction_id" bson:"transaction_id"`
	Price           float64            `json:"price" bson:"price"`
	Currency        string             `json:"currency,omitempty" bson:"currency,omitempty"`
	Date            time.Time          `json:"date" bson:"date"`
	ClassName       string             `json:"class_name,omitempty" bson:"class_name,omitempty"`
	ClassImage      string             `json:"class_image,omitempty" bson:"class_image,omitempty"`
	InstructorEmail string             `json:"instructor_email,omitempty" bson:"instructor_email,omitempty"`
	Status          string             `json:"status,omitempty" bson:"status,omitempty"`
}
