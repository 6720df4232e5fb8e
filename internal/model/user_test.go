package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRole_CanPromoteTo(t *testing.T) {
	tests := []struct {
		from, to Role
		want     bool
	}{
		{RoleUser, RoleInstructor, true},
		{RoleUser, RoleAdmin, true},
		{RoleInstructor, RoleAdmin, true},
		{RoleInstructor, RoleInstructor, false},
		{RoleAdmin, RoleInstructor, false},
		{RoleAdmin, RoleUser, false},
		{Role(""), RoleInstructor, true},
		{RoleUser, Role("owner"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanPromoteTo(tt.to))
		})
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Instructor ")
	assert.True(t, ok)
	assert.Equal(t, RoleInstructor, r)

	_, ok = ParseRole("roll")
	assert.False(t, ok)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}

func TestNewCartItem_IsASnapshot(t *testing.T) {
	class := Class{
		ID: primitive.NewObjectID(),
		ClassDetails: ClassDetails{
			Name:           "Pottery",
			AvailableSeats: 5,
			Price:          40,
			Status:         ClassStatusApproved,
		},
	}

	item := NewCartItem(class, "Student@X.com", time.Now())

	class.Price = 99
	class.AvailableSeats = 0
	class.Name = "Ceramics"

	assert.True(t, item.ID.IsZero())
	assert.Equal(t, "student@x.com", item.UserEmail)
	assert.Equal(t, "Pottery", item.Name)
	assert.Equal(t, Count(5), item.AvailableSeats)
	assert.Equal(t, Price(40), item.Price)
}
