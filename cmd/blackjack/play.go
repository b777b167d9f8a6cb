package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#046A38")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs an interactive session at the terminal.
type PlayCmd struct {
	Rules    string `help:"House rules HCL file" type:"existingfile"`
	Decks    int    `help:"Number of decks (1-8); prompted when omitted" default:"0"`
	Seed     int64  `help:"Random seed; 0 uses the clock" default:"0"`
	Debug    bool   `help:"Write engine debug output to blackjack.log"`
	Scripted bool   `help:"Choose every card dealt (demo mode)"`
}

// Run implements the kong command.
func (c *PlayCmd) Run() error {
	rules := game.DefaultRules()
	if c.Rules != "" {
		var err error
		rules, err = game.LoadRules(c.Rules)
		if err != nil {
			return err
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	con, err := console.New(rng)
	if err != nil {
		return err
	}
	defer func() {
		if err := con.Close(); err != nil {
			log.Error("Failed to close console", "error", err)
		}
	}()

	fmt.Fprint(con.Out(), titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Fprintln(con.Out())
	fmt.Fprintln(con.Out(), "Quit any prompt with q.")
	fmt.Fprintln(con.Out())

	if c.Decks != 0 {
		rules.Decks = c.Decks
	} else {
		decks, err := con.NumDecks()
		if err != nil {
			return nil // quit at the first prompt; nothing to unwind
		}
		rules.Decks = decks
	}
	if err := rules.Validate(); err != nil {
		return err
	}

	names, err := con.PlayerNames(rules.MaxPlayers)
	if err != nil {
		return nil
	}

	logger, closeLog, err := debugLogger(c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []game.SessionOption{
		game.WithLogger(logger),
		game.WithRNG(rng),
	}
	if c.Scripted {
		opts = append(opts, game.WithScriptedDeals(game.NewScripted(con.PickCard)))
	}

	session, err := game.NewSession(rules, names, con, opts...)
	if err != nil {
		return err
	}
	session.Events().Subscribe(console.NewRenderer(con.Out()))

	if err := session.Run(); err != nil {
		return err
	}
	fmt.Fprintln(con.Out(), "Thanks for playing.")
	return nil
}

func debugLogger(enabled bool) (*log.Logger, func(), error) {
	if !enabled {
		return log.New(io.Discard), func() {}, nil
	}
	file, err := os.OpenFile("blackjack.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create debug log: %w", err)
	}
	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})
	return logger, func() {
		if err := file.Close(); err != nil {
			log.Error("Failed to close debug log", "error", err)
		}
	}, nil
}
