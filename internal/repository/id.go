package repository

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator returns the random part of a new entity id.
type IDGenerator func() string

// NewUUIDGenerator returns an IDGenerator backed by random v4 UUIDs without
// dashes, so a prefixed id always fits in VARCHAR(50).
func NewUUIDGenerator() IDGenerator {
	return func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}

// NewID joins prefix and a generated suffix, e.g. "thread-abc".
func NewID(prefix string, gen IDGenerator) string {
	return prefix + "-" + gen()
}
