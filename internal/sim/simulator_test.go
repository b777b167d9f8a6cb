package sim

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestSimulatorRun(t *testing.T) {
	t.Parallel()
	sim := New(Config{
		Sessions: 4,
		Rounds:   20,
		Players:  2,
		Decks:    2,
		Seed:     7,
		Parallel: 2,
		Logger:   zerolog.Nop(),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Sessions)
	assert.Greater(t, stats.Rounds, 0)
	assert.Greater(t, stats.Hands, 0)
	assert.Greater(t, stats.Wagered, 0)
	assert.Equal(t, stats.Hands, stats.Wins+stats.Blackjacks+stats.Pushes+stats.Losses)
}

func TestSimulatorIsDeterministicForSeed(t *testing.T) {
	t.Parallel()
	run := func(parallel int) *Stats {
		sim := New(Config{
			Sessions: 3,
			Rounds:   10,
			Players:  1,
			Decks:    1,
			Seed:     42,
			Parallel: parallel,
			Logger:   zerolog.Nop(),
		})
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats
	}

	// identical totals regardless of worker count
	assert.Equal(t, run(1), run(3))
}

func TestSimulatorRespectsRoundBudget(t *testing.T) {
	t.Parallel()
	sim := New(Config{
		Sessions: 1,
		Rounds:   5,
		Players:  1,
		Decks:    8,
		Seed:     1,
		Parallel: 1,
		Logger:   zerolog.Nop(),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Rounds, "an eight-deck shoe outlasts the budget")
}

func TestStatsMergeAndEdge(t *testing.T) {
	t.Parallel()
	a := &Stats{Sessions: 1, Rounds: 10, Hands: 10, Wins: 4, Losses: 6, Wagered: 1000, HouseNet: 200}
	b := &Stats{Sessions: 1, Rounds: 5, Hands: 5, Pushes: 5, Wagered: 500, HouseNet: -100}
	a.Merge(b)

	assert.Equal(t, 2, a.Sessions)
	assert.Equal(t, 15, a.Rounds)
	assert.Equal(t, 15, a.Hands)
	assert.Equal(t, 1500, a.Wagered)
	assert.Equal(t, 100, a.HouseNet)
	assert.InDelta(t, 100.0/1500.0, a.HouseEdge(), 1e-9)

	empty := &Stats{}
	assert.Zero(t, empty.HouseEdge())
}

func TestCollectorCountsOutcomes(t *testing.T) {
	t.Parallel()
	coll := &collector{}
	coll.OnEvent(game.NewRoundStartEvent("r1", 1, 1, nil))
	coll.OnEvent(game.NewHandResultEvent(game.PlayerView{}, game.HandView{Bet: 100}, game.HandView{}, game.OutcomeWin, 200))
	coll.OnEvent(game.NewHandResultEvent(game.PlayerView{}, game.HandView{Bet: 100}, game.HandView{}, game.OutcomeEvenMoney, 200))
	coll.OnEvent(game.NewHandResultEvent(game.PlayerView{}, game.HandView{Bet: 100}, game.HandView{}, game.OutcomeLose, 0))

	assert.Equal(t, 1, coll.stats.Rounds)
	assert.Equal(t, 3, coll.stats.Hands)
	assert.Equal(t, 1, coll.stats.Wins)
	assert.Equal(t, 1, coll.stats.Blackjacks, "even money counts with blackjacks")
	assert.Equal(t, 1, coll.stats.Losses)
	assert.Equal(t, 300, coll.stats.Wagered)
}
