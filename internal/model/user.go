package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the single permission level a user holds.
type Role string

const (
	RoleUser       Role = "users"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// roleRank orders roles for promotion; promotions only move up.
var roleRank = map[Role]int{
	RoleUser:       1,
	RoleInstructor: 2,
	RoleAdmin:      3,
}

// ParseRole converts a stored or requested role string into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// CanPromoteTo reports whether a user holding r may be moved to target.
func (r Role) CanPromoteTo(target Role) bool {
	from, ok := roleRank[r]
	if !ok {
		// Legacy documents without a role are treated as plain users.
		from = roleRank[RoleUser]
	}
	to, ok := roleRank[target]
	return ok && to > from
}

// User represents a registered account on the platform.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Photo     string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role      Role               `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// NormalizeEmail is applied before every email is stored or compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
