package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleUser   Role = "user"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleMember, RoleUser}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleUser:
		return true
	}
	return false
}

// User is an account able to log in.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Role         Role               `json:"role" bson:"role"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// Claim is the identity carried by a credential token.
type Claim struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
}

// IsSelf reports whether id names the account the claim was issued for.
// Both sides are compared as ObjectIDs, so hex case does not matter. A
// malformed id fails with primitive.ErrInvalidHex.
func (c Claim) IsSelf(id string) (bool, error) {
	target, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%w: %q", primitive.ErrInvalidHex, id)
	}
	subject, err := primitive.ObjectIDFromHex(c.Subject)
	if err != nil {
		return false, nil
	}
	return subject == target, nil
}
