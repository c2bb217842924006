// Package utils provides general-purpose helper utilities used across
// the application: type-safe context keys, HTTP response writing, JWT
// token generation and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/promptkeep/prompt-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated caller's user ID
// is stored in the request context by the auth middleware.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user identifier from
// the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// CallerFromContext resolves the caller identity from the context as an
// optional reference: absent when the request was not authenticated.
func CallerFromContext(ctx context.Context) models.UserRef {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return models.UserRef{}
	}
	return models.NewUserRef(userID)
}
