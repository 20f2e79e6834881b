package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestGame seats the named players on the standard board with a fixed seed.
func newTestGame(t *testing.T, names ...string) *GameState {
	t.Helper()
	gs, err := NewGame(Setup{
		NumPlayers: len(names),
		Names:      names,
		Rand:       NewRand(42),
	})
	require.NoError(t, err)
	return gs
}

// newBoardGame seats the named players on a custom board.
func newBoardGame(t *testing.T, board *Board, cards []ChanceCard, names ...string) *GameState {
	t.Helper()
	gs, err := NewGame(Setup{
		NumPlayers: len(names),
		Names:      names,
		Board:      board,
		Cards:      cards,
		Rand:       NewRand(7),
	})
	require.NoError(t, err)
	return gs
}

var (
	alwaysBuy = DecideFunc(func(*Player, PropertyTile) bool { return true })
	neverBuy  = DecideFunc(func(*Player, PropertyTile) bool { return false })
)

// sumMoney totals every player's money, eliminated players included.
func sumMoney(gs *GameState) int {
	total := 0
	for _, p := range gs.Players {
		total += p.Money
	}
	return total
}
