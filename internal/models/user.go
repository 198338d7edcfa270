package models

import "time"

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// Username is the display name shown to other group members.
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// IsAdmin allows creating users and groups.
	IsAdmin bool

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64
}

// NewUser creates a new user with the given details.
// The ID is assigned by the store.
func NewUser(email, username, passwordHash string, isAdmin bool) *User {
	return &User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now().Unix(),
	}
}
