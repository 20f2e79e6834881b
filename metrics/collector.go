package metrics

import (
	"surfpoly/game"
	"time"

	"github.com/rs/zerolog"
)

// GameMetric summarizes a finished (or stopped) game.
type GameMetric struct {
	GameID        string
	Players       int
	Winner        string // "" when the game stopped without a winner
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Rounds        int
	Turns         int
	Purchases     int
	RentPaid      int // total money moved between players as rent
	ChanceDraws   int
	JailSentences int
	Eliminations  int
}

// MarshalZerologObject lets a GameMetric be logged with Event.Object.
func (m GameMetric) MarshalZerologObject(e *zerolog.Event) {
	e.Str("game", m.GameID).
		Int("players", m.Players).
		Str("winner", m.Winner).
		Dur("duration", m.Duration).
		Int("rounds", m.Rounds).
		Int("turns", m.Turns).
		Int("purchases", m.Purchases).
		Int("rent_paid", m.RentPaid).
		Int("chance_draws", m.ChanceDraws).
		Int("jail_sentences", m.JailSentences).
		Int("eliminations", m.Eliminations)
}

type Collector interface {
	Start(gameID string, players int)
	AddRound()
	AddTurn(out game.TurnOutcome)
	Complete(winner string) GameMetric
}

type collector struct {
	metric GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(gameID string, players int) {
	c.metric = GameMetric{
		GameID:    gameID,
		Players:   players,
		StartTime: time.Now(),
	}
}

func (c *collector) AddRound() {
	c.metric.Rounds++
}

func (c *collector) AddTurn(out game.TurnOutcome) {
	c.metric.Turns++
	switch out.Resolution {
	case game.Purchased:
		c.metric.Purchases++
	case game.PaidRent:
		for _, t := range out.Transfers {
			c.metric.RentPaid += t.Amount
		}
	case game.DrewChance:
		c.metric.ChanceDraws++
	case game.SentToJail:
		c.metric.JailSentences++
	}
	if out.Eliminated {
		c.metric.Eliminations++
	}
}

func (c *collector) Complete(winner string) GameMetric {
	c.metric.Winner = winner
	c.metric.EndTime = time.Now()
	c.metric.Duration = c.metric.EndTime.Sub(c.metric.StartTime)
	return c.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(gameID string, players int)  {}
func (c *dummyCollector) AddRound()                         {}
func (c *dummyCollector) AddTurn(out game.TurnOutcome)      {}
func (c *dummyCollector) Complete(winner string) GameMetric { return GameMetric{} }
