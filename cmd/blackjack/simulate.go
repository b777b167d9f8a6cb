package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/blackjack/internal/sim"
)

// SimulateCmd runs headless sessions with auto players.
type SimulateCmd struct {
	Sessions  int   `help:"Number of independent sessions" default:"100"`
	Rounds    int   `help:"Rounds per session" default:"100"`
	Players   int   `help:"Seats per session" default:"1"`
	Decks     int   `help:"Decks per shoe" default:"6"`
	HitSoft17 bool  `help:"Dealer hits soft 17"`
	Seed      int64 `help:"Base random seed" default:"1"`
	Parallel  int   `help:"Concurrent sessions" default:"4"`
	Verbose   bool  `short:"V" help:"Per-session debug logging"`
}

// Run implements the kong command.
func (c *SimulateCmd) Run() error {
	level := zerolog.InfoLevel
	if c.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	simulator := sim.New(sim.Config{
		Sessions:  c.Sessions,
		Rounds:    c.Rounds,
		Players:   c.Players,
		Decks:     c.Decks,
		HitSoft17: c.HitSoft17,
		Seed:      c.Seed,
		Parallel:  c.Parallel,
		Logger:    logger,
	})

	stats, err := simulator.Run(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(stats)
	return nil
}
