package apples

import "github.com/vovakirdan/applegrid/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Phase        Phase
	Turns        int
	Wins         int
	Player       core.Position
	Collectibles []core.Position // Row-major order
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: g.phase,
		Turns: g.turns,
		Wins:  g.wins,
	}
	if g.board != nil {
		snap.Player = g.board.Player()
		snap.Collectibles = g.board.Collectibles()
	}
	return snap
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Phase != other.Phase || s.Turns != other.Turns || s.Wins != other.Wins || s.Player != other.Player {
		return false
	}
	if len(s.Collectibles) != len(other.Collectibles) {
		return false
	}
	for i := range s.Collectibles {
		if s.Collectibles[i] != other.Collectibles[i] {
			return false
		}
	}
	return true
}
