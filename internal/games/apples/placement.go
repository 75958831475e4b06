package apples

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/applegrid/internal/core"
)

// MaxPlacementDraws caps the rejection-sampling loops. Seven distinct cells
// out of 36 need about eight draws on average, so hitting the cap means the
// random source is broken.
const MaxPlacementDraws = 10000

var (
	// ErrPlacementExhausted is returned when a placement loop hits
	// MaxPlacementDraws without finding a free cell.
	ErrPlacementExhausted = errors.New("apples: placement exhausted random draws")

	// ErrPlayerBeforeCollectibles is returned by PlacePlayer on a board
	// whose collectibles have not been placed yet.
	ErrPlayerBeforeCollectibles = errors.New("apples: player placed before collectibles")
)

// Rand is the uniform integer source used for placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// randomInterior draws a cell uniformly from the 6x6 interior.
func randomInterior(rng Rand) core.Position {
	span := InteriorMax - InteriorMin + 1
	return core.Pos(InteriorMin+rng.Intn(span), InteriorMin+rng.Intn(span))
}

// PlaceCollectibles fills the board with CollectibleCount distinct interior
// positions. Duplicate draws are discarded.
func PlaceCollectibles(b *Board, rng Rand) error {
	for draws := 0; b.collectibles.Size() < CollectibleCount; draws++ {
		if draws >= MaxPlacementDraws {
			return fmt.Errorf("%w: placed %d of %d collectibles",
				ErrPlacementExhausted, b.collectibles.Size(), CollectibleCount)
		}
		b.collectibles.Put(randomInterior(rng))
	}
	return nil
}

// PlacePlayer puts the player on an interior cell free of collectibles.
func PlacePlayer(b *Board, rng Rand) error {
	if b.collectibles.Size() == 0 {
		return ErrPlayerBeforeCollectibles
	}

	for draws := 0; draws < MaxPlacementDraws; draws++ {
		p := randomInterior(rng)
		if !b.collectibles.Has(p) {
			b.player = p
			return nil
		}
	}
	return fmt.Errorf("%w: no free cell for the player", ErrPlacementExhausted)
}

// Generate builds a ready-to-play board: collectibles first, then the
// player, then the derived grid.
func Generate(rng Rand) (*Board, error) {
	b := NewBoard()
	if err := PlaceCollectibles(b, rng); err != nil {
		return nil, err
	}
	if err := PlacePlayer(b, rng); err != nil {
		return nil, err
	}
	b.Recompute()
	return b, nil
}
