package game

import "fmt"

// Position is a 0-indexed grid cell
type Position struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on a gridSize x gridSize board
func (p Position) InBounds(gridSize int) bool {
	return p.Row >= 0 && p.Row < gridSize && p.Col >= 0 && p.Col < gridSize
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Sequence is the ordered target a player must reproduce
type Sequence []Position

// Clone returns an independent copy
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Distinct reports whether no position repeats
func (s Sequence) Distinct() bool {
	seen := make(map[Position]struct{}, len(s))
	for _, p := range s {
		if _, ok := seen[p]; ok {
			return false
		}
		seen[p] = struct{}{}
	}
	return true
}
