package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/memgrid/game"
)

// Player is a simulated player with a fixed per-click accuracy
type Player struct {
	rng               *rand.Rand
	accuracy          float64
	replayProbability float64
}

// NewPlayer validates probabilities in [0,1] and seeds the player
func NewPlayer(seed uint64, accuracy, replayProbability float64) (*Player, error) {
	if accuracy < 0 || accuracy > 1 {
		return nil, fmt.Errorf("accuracy %v out of range [0,1]", accuracy)
	}
	if replayProbability < 0 || replayProbability > 1 {
		return nil, fmt.Errorf("replay probability %v out of range [0,1]", replayProbability)
	}
	return &Player{
		rng:               rand.New(rand.NewPCG(seed, ^seed)),
		accuracy:          accuracy,
		replayProbability: replayProbability,
	}, nil
}

// Choose returns expected with the player's accuracy, otherwise some other cell
// A 1x1 board leaves no wrong cell to pick
func (p *Player) Choose(expected game.Position, gridSize int) game.Position {
	cells := gridSize * gridSize
	if cells <= 1 || p.rng.Float64() < p.accuracy {
		return expected
	}

	// Draw from the cells other than expected
	idx := p.rng.IntN(cells - 1)
	if idx >= expected.Row*gridSize+expected.Col {
		idx++
	}
	return game.Position{Row: idx / gridSize, Col: idx % gridSize}
}

// WantsReplay reports whether the player asks to see the sequence again
func (p *Player) WantsReplay() bool {
	return p.replayProbability > 0 && p.rng.Float64() < p.replayProbability
}
