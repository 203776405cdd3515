// internal/piece/generator.go
//
// Random piece generation.
// The random source is owned by the Generator and injected by the caller;
// there is no package-level random state. Ids are supplied by the caller,
// which is responsible for keeping them strictly increasing.

package piece

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the generator needs.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Generator produces pieces with uniformly drawn symbols.
type Generator struct {
	src Source
}

// NewGenerator wraps src. A nil src falls back to a time-seeded source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource(0)
	}
	return &Generator{src: src}
}

// NewSource returns a PCG source seeded with seed, or with the current
// time when seed is 0.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
}

// Next returns a piece with the given id and a random symbol.
func (g *Generator) Next(id int) Piece {
	return New(Alphabet[g.src.IntN(len(Alphabet))], id)
}
