// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, session token
// generation, OAuth2 state token signing and validation, and other common
// operations.
package utils

import (
	"context"

	"github.com/secretwall/secretwall/models"
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

// UserCtxKey is the key used to store the resolved session principal in the
// context. Used together with GetUserFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, user)
var UserCtxKey = contextKey("user")

// SessionTokenCtxKey is the key used to store the raw session cookie token in
// the context, so the logout handler can terminate the right session without
// re-reading the cookie.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetUserFromContext retrieves the resolved principal from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — a principal was resolved for this request
//   - ok == false — the request is anonymous
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetSessionTokenFromContext retrieves the raw session token from the
// context, if the request carried a session cookie.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok
}
