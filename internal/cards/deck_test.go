package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(1))
	require.Len(t, deck.Cards(), 52)

	seen := map[Card]bool{}
	for _, c := range deck.Cards() {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestDeckShuffleIsDeterministicForSeed(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())

	c := NewDeck(randutil.New(43))
	c.Shuffle()
	assert.NotEqual(t, a.Cards(), c.Cards())
}

func TestDeckCutRotates(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(1))
	before := append([]Card{}, deck.Cards()...)

	require.NoError(t, deck.Cut(10))
	assert.Equal(t, before[10], deck.Cards()[0])
	assert.Equal(t, before[9], deck.Cards()[51])

	// cutting at the complementary point restores the original order
	require.NoError(t, deck.Cut(42))
	assert.Equal(t, before, deck.Cards())
}

func TestDeckCutBounds(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(1))
	assert.Error(t, deck.Cut(0))
	assert.Error(t, deck.Cut(52))
	assert.Error(t, deck.Cut(-3))
	assert.NoError(t, deck.Cut(1))
	assert.NoError(t, deck.Cut(51))
}
