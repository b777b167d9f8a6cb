package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesAreValid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, DefaultRules().Validate())
}

func TestRulesValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"zero decks", func(r *Rules) { r.Decks = 0 }},
		{"too many decks", func(r *Rules) { r.Decks = 9 }},
		{"no players", func(r *Rules) { r.MaxPlayers = 0 }},
		{"zero increment", func(r *Rules) { r.BetIncrement = 0 }},
		{"inverted bet range", func(r *Rules) { r.MaxBet = r.MinBet - 100 }},
		{"min bet off increment", func(r *Rules) { r.MinBet = 150 }},
		{"bankroll below minimum", func(r *Rules) { r.Bankroll = 50 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rules := DefaultRules()
			tt.mutate(&rules)
			assert.Error(t, rules.Validate())
		})
	}
}

func TestRulesValidBet(t *testing.T) {
	t.Parallel()
	rules := DefaultRules() // $1-$100 in $1 increments

	assert.True(t, rules.ValidBet(100, 100000))
	assert.True(t, rules.ValidBet(10000, 100000))
	assert.False(t, rules.ValidBet(99, 100000))
	assert.False(t, rules.ValidBet(10100, 100000))
	assert.False(t, rules.ValidBet(150, 100000), "off-increment bet")

	// the bankroll caps the table maximum
	assert.True(t, rules.ValidBet(500, 500))
	assert.False(t, rules.ValidBet(600, 500))
}

func TestParseRules(t *testing.T) {
	t.Parallel()
	src := `
table {
  decks         = 6
  max_players   = 2
  min_bet       = 5
  max_bet       = 500
  bet_increment = 5
  bankroll      = 2000
  hit_soft_17   = true
  even_money    = false
}
`
	rules, err := ParseRules([]byte(src), "rules.hcl")
	require.NoError(t, err)

	assert.Equal(t, 6, rules.Decks)
	assert.Equal(t, 2, rules.MaxPlayers)
	assert.Equal(t, 500, rules.MinBet, "dollars convert to cents")
	assert.Equal(t, 50000, rules.MaxBet)
	assert.Equal(t, 500, rules.BetIncrement)
	assert.Equal(t, 200000, rules.Bankroll)
	assert.True(t, rules.HitSoft17)
	assert.False(t, rules.EvenMoney)
}

func TestParseRulesLayersOverDefaults(t *testing.T) {
	t.Parallel()
	rules, err := ParseRules([]byte(`table { decks = 2 }`), "rules.hcl")
	require.NoError(t, err)

	want := DefaultRules()
	want.Decks = 2
	assert.Equal(t, want, rules)
}

func TestParseRulesEmptyFileIsDefaults(t *testing.T) {
	t.Parallel()
	rules, err := ParseRules(nil, "rules.hcl")
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestParseRulesRejectsInvalid(t *testing.T) {
	t.Parallel()
	_, err := ParseRules([]byte(`table { decks = 20 }`), "rules.hcl")
	assert.Error(t, err)

	_, err = ParseRules([]byte(`table { decks = `), "rules.hcl")
	assert.Error(t, err)

	_, err = ParseRules([]byte(`table { unknown = 1 }`), "rules.hcl")
	assert.Error(t, err)
}
