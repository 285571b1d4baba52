package utils

import "github.com/google/uuid"

// UUIDGenerator produces the opaque tokens used as session identifiers.
// UUIDv7 values are both unguessable (crypto/rand payload) and roughly
// time-ordered, which keeps the sessions primary key index friendly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
