// Command surfpoly plays Surfpoly, a surf-themed property trading game,
// on the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"surfpoly/config"
	"surfpoly/engine"
	"surfpoly/game"
	"surfpoly/logging"
	"surfpoly/metrics"
	"surfpoly/terminal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const Version = "1.0.0"

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("surfpoly stopped")
		os.Exit(1)
	}
}

func newCommand(in io.Reader, out io.Writer) *cli.Command {
	defaults := config.Default()
	return &cli.Command{
		Name:    "surfpoly",
		Usage:   "play Surfpoly on the terminal",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "players",
				Usage:   "number of players (asked when unset)",
				Sources: cli.EnvVars("SURFPOLY_PLAYERS"),
			},
			&cli.StringSliceFlag{
				Name:  "name",
				Usage: "player name, repeat for each player",
			},
			&cli.UintFlag{
				Name:    "seed",
				Usage:   "random seed for dice and chance cards (0 = clock)",
				Sources: cli.EnvVars("SURFPOLY_SEED"),
			},
			&cli.IntFlag{
				Name:    "max-rounds",
				Usage:   "stop after this many rounds (0 = until a winner)",
				Sources: cli.EnvVars("SURFPOLY_MAX_ROUNDS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   defaults.LogLevel,
				Usage:   "trace, debug, info, warn or error",
				Sources: cli.EnvVars("SURFPOLY_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "pretty",
				Value:   defaults.Pretty,
				Usage:   "human-readable logs instead of JSON",
				Sources: cli.EnvVars("SURFPOLY_PRETTY_LOGS"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Config{
				Players:   int(cmd.Int("players")),
				Names:     cmd.StringSlice("name"),
				Seed:      cmd.Uint("seed"),
				MaxRounds: int(cmd.Int("max-rounds")),
				LogLevel:  cmd.String("log-level"),
				Pretty:    cmd.Bool("pretty"),
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logging.Init(cfg.LogLevel, cfg.Pretty, os.Stderr); err != nil {
				return err
			}
			_, err := run(ctx, cfg, in, out)
			return err
		},
	}
}

// run collects the players on the terminal, then plays one game.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) (engine.Result, error) {
	console := terminal.NewConsole(in, out)

	players := cfg.Players
	if players == 0 {
		n, err := console.AskPlayerCount(ctx, config.MaxPlayers)
		if err != nil {
			return engine.Result{}, err
		}
		players = n
	}
	names, err := console.AskPlayerNames(ctx, cfg.Names, players)
	if err != nil {
		return engine.Result{}, err
	}

	seed := cfg.RandomSeed()
	r := game.NewRand(seed)
	rules := game.NewStandardRules()
	gs, err := game.NewGame(game.Setup{
		NumPlayers: players,
		Names:      names,
		Rules:      rules,
		Rand:       r,
	})
	if err != nil {
		return engine.Result{}, fmt.Errorf("failed to set up game: %w", err)
	}
	log.Info().Str("game", gs.ID).Uint64("seed", seed).Msg("game created")

	e := engine.LocalEngine(gs, game.NewDice(r, rules.DieFaces()), console,
		engine.WithMaxRounds(cfg.MaxRounds),
		engine.WithCollector(metrics.NewCollector()),
	)
	return e.Run(ctx)
}
