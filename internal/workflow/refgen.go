package workflow

import (
	"github.com/willfong/airbook/internal/config"
	"github.com/willfong/airbook/internal/utils"
)

// RefGenerator produces candidate booking references. Candidates are not
// pre-checked against the store: the orchestrator inserts optimistically
// and asks for a fresh candidate when the bookRef unique constraint
// reports a conflict.
type RefGenerator struct {
	rng    *utils.Random
	length int
}

// NewRefGenerator creates a generator backed by the given RNG.
func NewRefGenerator(rng *utils.Random) *RefGenerator {
	return &RefGenerator{
		rng:    rng,
		length: config.BookingRefLength,
	}
}

// Next returns a fresh candidate reference.
func (g *RefGenerator) Next() string {
	return g.rng.Reference(g.length)
}
