package models

import "time"

// User represents a registered account used for authentication and
// resource ownership. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. It is stored lowercased so
	// that lookups are case-insensitive.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never persisted and the hash is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
