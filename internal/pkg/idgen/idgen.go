// Package idgen produces ids for chat messages and other stored records
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// separator joins a prefix to the generated part
const separator = "_"

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + separator + id
}

// UUIDGenerator issues time-ordered UUIDs, so ids of records written later
// sort later
type UUIDGenerator struct {
	prefix string
}

// NewUUID returns a generator; prefix may be empty
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a version 7 UUID, or a random one if the clock source
// fails
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return withPrefix(g.prefix, id.String())
}

// SequentialGenerator counts up from 1. Safe for concurrent use.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential returns a counting generator for tests
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next number
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}
