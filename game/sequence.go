package game

import (
	"fmt"
	"math/rand/v2"
)

// SequenceGenerator samples round sequences from a substitutable random source
type SequenceGenerator struct {
	rng *rand.Rand
}

// NewSequenceGenerator creates a generator seeded for reproducible output
func NewSequenceGenerator(seed uint64) *SequenceGenerator {
	return NewSequenceGeneratorFromSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSequenceGeneratorFromSource creates a generator over an arbitrary source
func NewSequenceGeneratorFromSource(src rand.Source) *SequenceGenerator {
	return &SequenceGenerator{rng: rand.New(src)}
}

// SequenceLength returns min(gridSize², initialLength + level - 1)
func SequenceLength(gridSize, level, initialLength int) int {
	total := gridSize * gridSize
	length := initialLength + level - 1
	if length > total {
		return total
	}
	return length
}

// Generate samples distinct positions uniformly without replacement
func (g *SequenceGenerator) Generate(gridSize, level, initialLength int) (Sequence, error) {
	if gridSize < 1 || level < 1 || initialLength < 1 {
		return nil, fmt.Errorf("%w: grid=%d level=%d initial=%d",
			ErrInvalidSequenceParams, gridSize, level, initialLength)
	}

	total := gridSize * gridSize
	length := SequenceLength(gridSize, level, initialLength)

	// Partial Fisher-Yates over flat cell indices
	cells := make([]int, total)
	for i := range cells {
		cells[i] = i
	}
	for i := 0; i < length; i++ {
		j := i + g.rng.IntN(total-i)
		cells[i], cells[j] = cells[j], cells[i]
	}

	seq := make(Sequence, length)
	for i := 0; i < length; i++ {
		seq[i] = Position{Row: cells[i] / gridSize, Col: cells[i] % gridSize}
	}
	return seq, nil
}
