package utils

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

// IDLength is the length of every resource identifier.
const IDLength = 24

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IDGenerator produces 24-character hexadecimal resource identifiers.
//
// Identifiers are the first 12 bytes of a UUIDv7, so they start with a
// millisecond timestamp and sort roughly by creation time.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		v7 = uuid.New()
	}

	return hex.EncodeToString(v7[:IDLength/2])
}

// IsValidID reports whether id is exactly 24 hexadecimal characters.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}
