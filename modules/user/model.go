package user

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	collectionName = "users"
	resourceName   = "user"

	// RoleAdmin may edit content and register further users.
	RoleAdmin = "admin"
)

type User struct {
	ID           bson.ObjectID `bson:"_id" json:"id"`
	Email        string        `bson:"email" json:"email"`
	Name         string        `bson:"name" json:"name"`
	Role         string        `bson:"role" json:"role"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	LastLoginAt  *time.Time    `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Session is the result of a successful login.
type Session struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
