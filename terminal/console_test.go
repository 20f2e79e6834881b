package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"surfpoly/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, names ...string) *game.GameState {
	t.Helper()
	gs, err := game.NewGame(game.Setup{
		NumPlayers: len(names),
		Names:      names,
		Rand:       game.NewRand(1),
	})
	require.NoError(t, err)
	return gs
}

func TestAskPlayerCount(t *testing.T) {
	t.Run("re-asks until the count is valid", func(t *testing.T) {
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader("zero\n0\n3\n"), out)

		n, err := c.AskPlayerCount(context.Background(), 8)

		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, 3, strings.Count(out.String(), "Enter number of players:"))
	})

	t.Run("counts above the limit are refused", func(t *testing.T) {
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader("100\n9\n8\n"), out)

		n, err := c.AskPlayerCount(context.Background(), 8)

		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, 2, strings.Count(out.String(), "Please enter a whole number between 1 and 8."))
	})

	t.Run("closed input", func(t *testing.T) {
		c := NewConsole(strings.NewReader(""), &bytes.Buffer{})

		_, err := c.AskPlayerCount(context.Background(), 8)

		require.ErrorIs(t, err, ErrNoInput)
		require.ErrorIs(t, c.Err(), ErrNoInput)
	})
}

func TestAskPlayerNames(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("Kelly\n\n  Carissa \n"), out)

	names, err := c.AskPlayerNames(context.Background(), nil, 2)

	require.NoError(t, err)
	require.Equal(t, []string{"Kelly", "Carissa"}, names)
	require.Contains(t, out.String(), "Enter name of player 2:")

	t.Run("keeps known names", func(t *testing.T) {
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader("Steph\n"), out)

		names, err := c.AskPlayerNames(context.Background(), []string{"Kelly", "Carissa"}, 3)

		require.NoError(t, err)
		require.Equal(t, []string{"Kelly", "Carissa", "Steph"}, names)
		require.Equal(t, "Enter name of player 3:\n", out.String())
	})
}

func TestShouldBuy(t *testing.T) {
	property := game.PropertyTile{Name: "Trestles, California", Price: 300, Rent: 75}
	p := &game.Player{Name: "Kelly"}

	for input, want := range map[string]bool{
		"yes\n": true,
		"YES\n": true,
		"y\n":   true,
		"no\n":  false,
		"maybe": false,
	} {
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader(input), out)

		require.Equal(t, want, c.ShouldBuy(context.Background(), p, property), "answer %q", input)
		require.Contains(t, out.String(), "Price: $300")
		require.NoError(t, c.Err())
	}

	t.Run("closed input declines and keeps the error", func(t *testing.T) {
		c := NewConsole(strings.NewReader(""), &bytes.Buffer{})

		require.False(t, c.ShouldBuy(context.Background(), p, property))
		require.ErrorIs(t, c.Err(), ErrNoInput)
		require.ErrorIs(t, c.WaitForRoll(context.Background(), p), ErrNoInput)
	})
}

func TestWaitForRoll(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("\n"), out)

	err := c.WaitForRoll(context.Background(), &game.Player{Name: "Kelly"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Kelly's turn. Press Enter to roll the dice.")
}

func TestReadsStopWhenContextIsDone(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()
	c := NewConsole(in, &bytes.Buffer{})
	p := &game.Player{Name: "Kelly"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.WaitForRoll(ctx, p)

	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, c.Err(), context.Canceled)
	require.False(t, c.ShouldBuy(context.Background(), p, game.PropertyTile{Name: "Reef", Price: 100}),
		"A cancelled console should keep declining")
}

func TestShowBoard(t *testing.T) {
	gs := newGame(t, "Kelly", "Carissa")
	gs.Players[0].Position = 3
	gs.Players[0].InJail = true
	gs.Players[1].Position = 3
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(""), out)

	c.ShowBoard(gs)

	board := out.String()
	require.True(t, strings.HasPrefix(board, "Board:\n| Go | Pipeline, Hawaii | Teahupo'o, Tahiti | 🌊(J)🏖 |"))
	require.Contains(t, board, "| Surf Station |")
	require.Contains(t, board, "| Chance |")
	require.True(t, strings.HasSuffix(board, "Fistral Beach, England |\n"))
}

func TestShowLeaderboard(t *testing.T) {
	gs := newGame(t, "Kelly", "Carissa")
	gs.Players[1].Properties = []string{"Pipeline, Hawaii"}
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(""), out)

	c.ShowLeaderboard(gs.Leaderboard())

	require.Equal(t, "\nLeaderboard:\n"+
		"1. Carissa (🏖) - Net Worth: $1700\n"+
		"2. Kelly (🌊) - Net Worth: $1500\n", out.String())
}

func TestShowOutcome(t *testing.T) {
	t.Run("rent and bankruptcy", func(t *testing.T) {
		gs := newGame(t, "Kelly", "Carissa", "Steph")
		gs.Ownership[1] = 1
		gs.Players[0].Money = 20
		outcome, err := gs.TakeTurn(0, 1, nil)
		require.NoError(t, err)
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader(""), out)

		c.ShowOutcome(gs, outcome)

		text := out.String()
		require.Contains(t, text, "Kelly rolled a 1.")
		require.Contains(t, text, "owned by Carissa. You paid $50 to Carissa.")
		require.Contains(t, text, "Kelly has $-30 and owns: []")
		require.Contains(t, text, "Kelly is bankrupt! Game over for them.")
	})

	t.Run("jail", func(t *testing.T) {
		gs := newGame(t, "Kelly", "Carissa")
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader(""), out)

		outcome, err := gs.TakeTurn(0, 3, nil)
		require.NoError(t, err)
		c.ShowOutcome(gs, outcome)
		outcome, err = gs.TakeTurn(0, 0, nil)
		require.NoError(t, err)
		c.ShowOutcome(gs, outcome)

		require.Contains(t, out.String(), "Go to Jail! You are now in jail for 3 turns.")
		require.Contains(t, out.String(), "Kelly is in jail for 2 more turns.")
	})

	t.Run("chance", func(t *testing.T) {
		gs := newGame(t, "Kelly", "Carissa")
		gs.Players[0].Position = 6
		top := gs.Deck.Cards()[0]
		outcome, err := gs.TakeTurn(0, 3, nil)
		require.NoError(t, err)
		out := &bytes.Buffer{}
		c := NewConsole(strings.NewReader(""), out)

		c.ShowOutcome(gs, outcome)

		require.Contains(t, out.String(), top.Description+" Effect: "+signed(top.Amount))
	})
}

func TestSigned(t *testing.T) {
	require.Equal(t, "+$200", signed(200))
	require.Equal(t, "-$150", signed(-150))
	require.Equal(t, "+$0", signed(0))
}
