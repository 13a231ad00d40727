package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator creates row identifiers for stores that cannot assign them server-side.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Valid reports whether raw is a canonical UUID string.
func Valid(raw string) bool {
	raw = strings.TrimSpace(raw)
	if len(raw) != 36 {
		return false
	}
	return uuid.Validate(raw) == nil
}
