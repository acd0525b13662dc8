package models

import "time"

// User represents a registered account as stored in the users collection.
// The password hash is persisted to disk but must never reach API callers;
// use Public before serializing a user into a response.
type User struct {
	ID           string    `json:"id"`              // Opaque unique identifier, immutable
	Username     string    `json:"username"`        // Unique (case-insensitive), immutable
	Email        string    `json:"email,omitempty"` // Unique (case-insensitive), optional
	PasswordHash string    `json:"passwordHash"`    // bcrypt hash, never the raw password
	IsAdmin      bool      `json:"isAdmin"`         // Mutated only through promotion
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the caller-facing view of a user, with the hash stripped.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the user without credential material.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
