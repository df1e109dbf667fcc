// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, identifier
// generation, HTTP response writing, JWT token generation and validation.
package utils

import (
	"context"
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

var (
	// UserIDCtxKey is the key under which the auth middleware stores the
	// authenticated user's identifier.
	//
	// Example of writing a value to the context:
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "65f1c2a4e13b9d0a7c5e8f21")
	UserIDCtxKey = contextKey("userID")

	// TokenCtxKey is the key under which the auth middleware stores the raw
	// bearer token of the current request.
	TokenCtxKey = contextKey("token")

	// RequestTokenCtxKey is the key under which the resolved request
	// correlation token is stored.
	RequestTokenCtxKey = contextKey("requestToken")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTokenFromContext retrieves the raw bearer token from the context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// WithRequestToken returns a copy of ctx carrying the resolved request
// correlation token.
func WithRequestToken(ctx context.Context, requestToken string) context.Context {
	return context.WithValue(ctx, RequestTokenCtxKey, requestToken)
}

// GetRequestTokenFromContext retrieves the request correlation token.
// An empty token is a valid value, so only the presence of the key is
// reported by ok.
func GetRequestTokenFromContext(ctx context.Context) (string, bool) {
	requestToken, ok := ctx.Value(RequestTokenCtxKey).(string)
	return requestToken, ok
}
