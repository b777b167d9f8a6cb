// Package sim runs headless blackjack sessions with auto players to
// measure payout behavior over many rounds.
package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// Config holds configuration for running simulations.
type Config struct {
	Sessions  int
	Rounds    int // per session
	Players   int
	Decks     int
	HitSoft17 bool
	Seed      int64
	Parallel  int
	Logger    zerolog.Logger
}

// Simulator runs blackjack session simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Parallel < 1 {
		config.Parallel = 1
	}
	return &Simulator{config: config}
}

// Run executes every session and returns merged statistics. Sessions
// are independent: each gets its own RNG derived from the base seed, so
// a fixed seed reproduces the exact same totals regardless of
// parallelism.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	logger := s.config.Logger.With().Str("component", "simulator").Logger()
	logger.Info().
		Int("sessions", s.config.Sessions).
		Int("rounds", s.config.Rounds).
		Int("decks", s.config.Decks).
		Int64("seed", s.config.Seed).
		Msg("simulation starting")

	var mu sync.Mutex
	total := &Stats{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallel)

	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats, err := s.runSession(logger, s.config.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("session %d failed: %w", i+1, err)
			}
			mu.Lock()
			total.Merge(stats)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info().
		Int("rounds", total.Rounds).
		Int("hands", total.Hands).
		Float64("house_edge", total.HouseEdge()).
		Msg("simulation complete")
	return total, nil
}

func (s *Simulator) runSession(logger zerolog.Logger, seed int64) (*Stats, error) {
	sessionID := uuid.NewString()
	slog := logger.With().Str("session_id", sessionID).Int64("seed", seed).Logger()

	rules := game.DefaultRules()
	rules.Decks = s.config.Decks
	rules.HitSoft17 = s.config.HitSoft17
	if s.config.Players > rules.MaxPlayers {
		rules.MaxPlayers = s.config.Players
	}

	names := make([]string, s.config.Players)
	for i := range names {
		names[i] = fmt.Sprintf("sim-%d", i+1)
	}

	rng := randutil.New(seed)
	coll := &collector{}
	prompter := &mimicPrompter{
		rng:       rng,
		collector: coll,
		maxRounds: s.config.Rounds,
	}

	session, err := game.NewSession(rules, names, prompter, game.WithRNG(rng))
	if err != nil {
		return nil, err
	}
	session.Events().Subscribe(coll)

	if err := session.Run(); err != nil {
		return nil, err
	}

	coll.stats.Sessions = 1
	coll.stats.HouseNet = session.Dealer().Bankroll()
	slog.Debug().
		Int("rounds", coll.stats.Rounds).
		Int("house_net", coll.stats.HouseNet).
		Msg("session complete")
	return &coll.stats, nil
}
