package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLogLevel keeps the terminal free of per-turn logs.
const DefaultLogLevel = "warn"

// MaxPlayers caps the roster; tokens repeat after five players anyway.
const MaxPlayers = 8

// Config holds the process settings collected from flags and environment.
type Config struct {
	Players   int      // 0 = ask on the terminal
	Names     []string // missing names are asked on the terminal
	Seed      uint64   // 0 = seed from the clock
	MaxRounds int      // 0 = play until a winner
	LogLevel  string
	Pretty    bool
}

func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Pretty:   true,
	}
}

// Validate checks the settings and fills Players from Names when unset.
func (c *Config) Validate() error {
	if c.Players < 0 || c.Players > MaxPlayers {
		return fmt.Errorf("players must be between 1 and %d, got %d", MaxPlayers, c.Players)
	}
	if c.Players == 0 && len(c.Names) > 0 {
		c.Players = len(c.Names)
	}
	if c.Players > 0 && len(c.Names) > c.Players {
		return fmt.Errorf("got %d names for %d players", len(c.Names), c.Players)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max rounds cannot be negative, got %d", c.MaxRounds)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// RandomSeed returns Seed, or a clock-based seed when Seed is zero.
func (c Config) RandomSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
