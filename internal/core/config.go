package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	// Seed drives every random placement. The platform layer fills it from
	// the clock; tests pin it for deterministic boards.
	Seed int64
}

// GameState summarizes a running game for the platform layer.
type GameState struct {
	Remaining int // Collectibles still on the board
	Turns     int // Recognized turns played in the current game
	Wins      int // Games won since the last reset
}
