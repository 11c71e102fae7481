// models/user.go
package models

import "time"

// User represents a resident account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	// Timezone is the IANA zone shifts are interpreted against (e.g. "America/New_York").
	Timezone  string    `bson:"timezone" json:"timezone"`
	TokenHash string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistrationRequest is the payload for POST /api/users/register.
type UserRegistrationRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Timezone string `json:"timezone"`
}

// UserUpdateRequest carries the mutable user fields.
type UserUpdateRequest struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}
