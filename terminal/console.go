// Package terminal is the text front end of the game: it reads the player
// setup, roll triggers and purchase answers from an input stream and writes
// turn narration, the board and the leaderboard to an output stream.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"surfpoly/game"
)

// ErrNoInput is returned when the input ends before an answer was given.
var ErrNoInput = errors.New("input closed")

// Console implements the engine's Terminal over a pair of streams.
type Console struct {
	in    *bufio.Scanner
	lines chan line
	out   io.Writer
	err   error
}

type line struct {
	text string
	err  error
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Err returns the first read error. Once set, every later read fails with it.
func (c *Console) Err() error {
	return c.err
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// scan feeds input lines to the console until the input ends.
func (c *Console) scan() {
	for c.in.Scan() {
		c.lines <- line{text: c.in.Text()}
	}
	err := ErrNoInput
	if scanErr := c.in.Err(); scanErr != nil {
		err = fmt.Errorf("%w: %w", ErrNoInput, scanErr)
	}
	c.lines <- line{err: err}
}

// readLine waits for the next input line or for ctx to be done.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.lines == nil {
		c.lines = make(chan line)
		go c.scan()
	}

	select {
	case <-ctx.Done():
		c.err = ctx.Err()
		return "", c.err
	case l := <-c.lines:
		if l.err != nil {
			c.err = l.err
			return "", c.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// AskPlayerCount asks until it gets a number between 1 and limit.
func (c *Console) AskPlayerCount(ctx context.Context, limit int) (int, error) {
	for {
		c.printf("Enter number of players:\n")
		text, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n > 0 && n <= limit {
			return n, nil
		}
		c.printf("Please enter a whole number between 1 and %d.\n", limit)
	}
}

// AskPlayerNames asks for non-blank names until there are n, keeping the
// ones already known.
func (c *Console) AskPlayerNames(ctx context.Context, known []string, n int) ([]string, error) {
	names := append(make([]string, 0, n), known...)
	for len(names) < n {
		c.printf("Enter name of player %d:\n", len(names)+1)
		name, err := c.readLine(ctx)
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (c *Console) WaitForRoll(ctx context.Context, p *game.Player) error {
	c.printf("\n%s's turn. Press Enter to roll the dice.\n", p.Name)
	_, err := c.readLine(ctx)
	return err
}

// ShouldBuy asks the yes/no purchase question. A read error or a done ctx
// counts as no and is kept for Err.
func (c *Console) ShouldBuy(ctx context.Context, p *game.Player, property game.PropertyTile) bool {
	c.printf("%s landed on %s.\n", p.Name, property.Name)
	c.printf("This property is unowned. Price: $%d\n", property.Price)
	c.printf("Do you want to buy it? (yes/no)\n")
	answer, err := c.readLine(ctx)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y")
}

func (c *Console) AnnounceWinner(p *game.Player) {
	c.printf("%s is the winner!\n", p.Name)
}
