package core

// TurnResult reports what happened during one input-command cycle.
type TurnResult struct {
	// Recognized is false when the input did not decode to a command.
	// Nothing else in the result is meaningful in that case.
	Recognized bool

	Command Command // Decoded command
	Moved   bool    // False when the move would have entered the wall ring

	Collected bool // The player picked up a collectible this turn
	Remaining int  // Collectibles left after this turn, before any restart

	// Won is set on the turn the last collectible was taken. The game has
	// already been re-initialized when Restarted is also set.
	Won       bool
	Restarted bool
}
