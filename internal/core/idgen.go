package core

import "sync/atomic"

// IdentifierGenerator hands out identifiers for colonies, fleets and build
// requests. Identifiers must be unique across the lifetime of the generator;
// production deployments back this with a database sequence.
type IdentifierGenerator interface {
	NextID() int64
}

// SequenceGenerator issues monotonically increasing identifiers from an
// atomic counter. Safe for concurrent use.
type SequenceGenerator struct {
	last int64
}

// NewSequenceGenerator constructs a generator whose first issued id is
// start+1.
func NewSequenceGenerator(start int64) *SequenceGenerator {
	return &SequenceGenerator{last: start}
}

// NextID returns the next identifier in the sequence.
func (g *SequenceGenerator) NextID() int64 {
	return atomic.AddInt64(&g.last, 1)
}
