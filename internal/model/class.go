package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStatus is the moderation state of a class listing.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// ClassDetails is everything about a class except its identity. Cart items
// embed a copy of it.
type ClassDetails struct {
	Name             string      `json:"class_name" bson:"class_name"`
	Image            string      `json:"class_image,omitempty" bson:"class_image,omitempty"`
	InstructorName   string      `json:"instructor_name,omitempty" bson:"instructor_name,omitempty"`
	InstructorEmail  string      `json:"instructor_email" bson:"instructor_email"`
	AvailableSeats   Count       `json:"available_seats" bson:"available_seats"`
	EnrolledStudents Count       `json:"enrolled_students" bson:"enrolled_students"`
	Price            Price       `json:"price" bson:"price"`
	Status           ClassStatus `json:"status" bson:"status"`
	Feedback         string      `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// Class is a listing created by an instructor.
type Class struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassDetails `bson:",inline"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
