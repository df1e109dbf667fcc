package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHasher hashes and verifies passwords with bcrypt.
type passwordHasher struct {
	cost int
}

func newPasswordHasher(cost int) passwordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return passwordHasher{cost: cost}
}

// hash fails with a wrapped [bcrypt.ErrPasswordTooLong] for passwords over
// 72 bytes.
func (h passwordHasher) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return string(hashed), nil
}

// matches reports whether password is the plain text of hashed. A malformed
// hash never matches.
func (h passwordHasher) matches(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
