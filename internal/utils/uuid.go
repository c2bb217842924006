package utils

import "github.com/google/uuid"

// UUIDGenerator produces resource identifiers. Version 7 UUIDs are
// preferred because they sort roughly by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
