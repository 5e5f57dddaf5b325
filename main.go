package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"connect4/config"
	"connect4/console"
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/searcher"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	arena := flag.String("arena", "", "Run an AI self-play experiment (pruning or budget) instead of a game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	setupLogging(cfg.LogLevel())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if *arena != "" {
		runArena(cfg, *arena)
		return
	}

	if err := play(cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Println("\nGoodbye.")
			return
		}
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// setupLogging keeps logs on stderr so they never interleave with the board.
func setupLogging(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.TimeOnly,
	})
}

func play(cfg config.Config, r io.Reader, w io.Writer) error {
	input := console.NewInput(r, w)

	mode, ok := cfg.TurnMode()
	if !ok {
		var err error
		if mode, err = console.PromptMode(input); err != nil {
			return err
		}
	}

	agents := map[game.Cell]engine.Agent{
		game.Player1: engine.HumanAgent{Input: input},
		game.Player2: engine.HumanAgent{Input: input},
		game.AI:      engine.NewSearchAgent(searcher.NewMinimax(cfg.SearchOptions()...), cfg.Weights),
	}
	s, err := engine.NewSession(cfg.NewBoard(), engine.NewTurnOrder(mode, cfg.RNGSeed()), agents)
	if err != nil {
		return err
	}

	_, err = s.Run(console.NewView(w))
	return err
}

func runArena(cfg config.Config, name string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mode, ok := cfg.TurnMode()
	if !ok {
		mode = engine.Random
	}
	a := experiments.Arena{
		Width:       cfg.Board.Width,
		Height:      cfg.Board.Height,
		Mode:        mode,
		Games:       cfg.Arena.Games,
		Parallelism: cfg.Arena.Parallelism,
		Seed:        cfg.RNGSeed(),
		Weights:     cfg.Weights,
	}

	dir, err := experiments.RunExperiment(ctx, a, name, cfg.Arena.Output)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	fmt.Println(dir)
}
