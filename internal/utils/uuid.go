package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered v7 UUIDs for trace ids and sync run ids.
type UUIDGenerator struct {
	next func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{next: uuid.NewV7}
}

// Generate falls back to a random v4 UUID when the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	if g.next != nil {
		if id, err := g.next(); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}
