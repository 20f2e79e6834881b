package engine

import (
	"context"
	"fmt"
	"surfpoly/game"
	"surfpoly/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithMaxRounds stops the game after n rounds. Zero means no limit.
func WithMaxRounds(n int) Option {
	return func(e *Engine) {
		e.maxRounds = n
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.Collector = c
	}
}

type Engine struct {
	State     *game.GameState
	Dice      game.Dice
	Terminal  Terminal
	Collector metrics.Collector
	maxRounds int
}

func LocalEngine(state *game.GameState, dice game.Dice, terminal Terminal, options ...Option) *Engine {
	if state == nil || dice == nil || terminal == nil {
		panic("engine needs a game state, dice and a terminal")
	}

	eng := &Engine{
		State:     state,
		Dice:      dice,
		Terminal:  terminal,
		Collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run plays rounds in join order until a winner is found, the round limit
// is reached or ctx is cancelled, either between turns or while the
// terminal waits for input.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	gs := e.State
	logger := log.With().Str("game", gs.ID).Logger()

	e.Collector.Start(gs.ID, len(gs.Players))
	logger.Info().Msgf("game started with %d players", len(gs.Players))

	result := Result{}
	for !gs.Over {
		if e.maxRounds > 0 && result.Rounds >= e.maxRounds {
			logger.Warn().Msgf("stopping after %d rounds without a winner", result.Rounds)
			break
		}
		result.Rounds++
		e.Collector.AddRound()

		// The roster is fixed for the round; players eliminated mid-round
		// are skipped by the Eliminated check.
		for _, p := range gs.ActivePlayers() {
			if gs.Over {
				break
			}
			if p.Eliminated {
				continue
			}
			if err := ctx.Err(); err != nil {
				return result, err
			}

			out, err := e.playTurn(ctx, p)
			if err != nil {
				return result, fmt.Errorf("turn of %s: %w", p.Name, err)
			}
			result.Turns++

			logger.Debug().
				Int("round", result.Rounds).
				Str("player", p.Name).
				Int("roll", out.Roll).
				Int("to", out.To).
				Stringer("jail", out.Jail).
				Stringer("resolution", out.Resolution).
				Int("money", p.Money).
				Msg("turn played")

			if out.Eliminated {
				logger.Info().Msgf("%s is bankrupt", p.Name)
			}
		}
	}

	if winner, ok := gs.Winner(); ok {
		result.Winner = winner.Name
		e.Terminal.AnnounceWinner(winner)
		logger.Info().Msgf("%s won after %d rounds", winner.Name, result.Rounds)
	}
	result.Metric = e.Collector.Complete(result.Winner)
	logger.Info().Object("metrics", result.Metric).Msg("game finished")
	return result, nil
}

// playTurn asks for a roll unless the player sits out in jail, applies the
// turn and publishes the new state.
func (e *Engine) playTurn(ctx context.Context, p *game.Player) (game.TurnOutcome, error) {
	skipping, err := e.State.IsSkippingTurn(p.ID)
	if err != nil {
		return game.TurnOutcome{}, err
	}

	roll := 0
	if !skipping {
		if err := e.Terminal.WaitForRoll(ctx, p); err != nil {
			return game.TurnOutcome{}, err
		}
		roll = e.Dice.Roll()
	}

	decider := game.DecideFunc(func(player *game.Player, property game.PropertyTile) bool {
		return e.Terminal.ShouldBuy(ctx, player, property)
	})
	out, err := e.State.TakeTurn(p.ID, roll, decider)
	if err != nil {
		return game.TurnOutcome{}, err
	}
	if err := e.Terminal.Err(); err != nil {
		return out, err
	}
	e.Collector.AddTurn(out)

	e.Terminal.ShowOutcome(e.State, out)
	e.Terminal.ShowBoard(e.State)
	e.Terminal.ShowLeaderboard(e.State.Leaderboard())
	return out, nil
}
