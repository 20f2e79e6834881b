package engine

import (
	"context"
	"surfpoly/game"
	"surfpoly/metrics"
)

// Terminal is the I/O boundary the engine talks to: it triggers rolls,
// answers purchase offers and displays what happened.
type Terminal interface {
	// ShouldBuy answers a purchase offer. An answer cut short by ctx or
	// by the input ending counts as no and is reported by Err.
	ShouldBuy(ctx context.Context, player *game.Player, property game.PropertyTile) bool
	// WaitForRoll blocks until the player asks to roll or ctx is done.
	WaitForRoll(ctx context.Context, player *game.Player) error
	ShowOutcome(gs *game.GameState, out game.TurnOutcome)
	ShowBoard(gs *game.GameState)
	ShowLeaderboard(standings []game.Standing)
	AnnounceWinner(player *game.Player)
	// Err returns the first input error, including ones hidden behind a
	// purchase answer.
	Err() error
}

// Result is what Run reports when the game loop stops.
type Result struct {
	Winner string // "" when stopped by the round limit
	Rounds int
	Turns  int
	Metric metrics.GameMetric
}
