package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued for an authenticated user.
//
// UserID carries the identity under the "user_id" claim; the standard
// "iss", "iat" and "exp" claims come from the embedded [jwt.RegisteredClaims].
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature). It is the only field
	// returned to clients.
	SignedString string `json:"token"`

	// UserID is the owner identifier extracted from the "user_id" claim.
	UserID string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TTL returns the remaining lifetime of the token relative to now.
// A non-positive value means the token has already expired.
func (t *Token) TTL(now time.Time) time.Duration {
	return t.ExpiresAt.Sub(now)
}
