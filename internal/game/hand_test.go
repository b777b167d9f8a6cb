package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/cards"
)

func handOf(t *testing.T, codes ...string) *Hand {
	t.Helper()
	h := NewHand()
	for _, code := range codes {
		c, err := cards.Parse(code)
		require.NoError(t, err)
		h.Hit(c)
	}
	return h
}

func mustCards(t *testing.T, codes ...string) []cards.Card {
	t.Helper()
	cc := make([]cards.Card, len(codes))
	for i, code := range codes {
		c, err := cards.Parse(code)
		require.NoError(t, err)
		cc[i] = c
	}
	return cc
}

func TestHandSoftTotal(t *testing.T) {
	t.Parallel()
	h := handOf(t, "AS", "6D")
	assert.True(t, h.IsSoft())
	assert.Equal(t, 7, h.Total().Low())
	assert.Equal(t, 17, h.TotalHigh())
	assert.Equal(t, "7 or 17", h.Total().String())
}

func TestHandStandCollapsesSoftTotal(t *testing.T) {
	t.Parallel()
	h := handOf(t, "AS", "6D")
	h.Stand()
	assert.False(t, h.IsSoft())
	assert.Equal(t, 17, h.Total().Low())
	assert.Equal(t, 17, h.TotalHigh())
}

func TestHandHardTotals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		codes []string
		total int
	}{
		{[]string{"KS", "QD"}, 20},
		{[]string{"2S", "3D", "4C"}, 9},
		{[]string{"AS", "AD", "9C"}, 21}, // soft: one ace counts 11
		{[]string{"AS", "6D", "9C"}, 16}, // hard 16: the ace cannot be 11
	}
	for _, tt := range tests {
		h := handOf(t, tt.codes...)
		assert.Equal(t, tt.total, h.TotalHigh(), "%v", tt.codes)
	}
}

func TestHandBlackjack(t *testing.T) {
	t.Parallel()
	assert.True(t, handOf(t, "AS", "KD").IsBlackjack())
	assert.True(t, handOf(t, "TD", "AH").IsBlackjack())
	assert.False(t, handOf(t, "AS", "6D").IsBlackjack())
	assert.False(t, handOf(t, "KS", "QD").IsBlackjack())
	// a 21 built from three cards is not blackjack
	assert.False(t, handOf(t, "AS", "5D", "5C").IsBlackjack())
}

func TestHandBust(t *testing.T) {
	t.Parallel()
	h := handOf(t, "KS", "QD", "5C")
	assert.True(t, h.IsBust())
	assert.False(t, h.CanHit())
	assert.Contains(t, h.String(), "BUSTED")
}

func TestHandCannotHitAt21(t *testing.T) {
	t.Parallel()
	assert.False(t, handOf(t, "AS", "KD").CanHit())
	assert.False(t, handOf(t, "TS", "5H", "6D").CanHit())
	assert.True(t, handOf(t, "TS", "5H").CanHit())
	// soft 21 counts as 21: no hit
	assert.False(t, handOf(t, "AS", "4D", "6C").CanHit())
}

func TestHandCanSplitRequiresMatchingRank(t *testing.T) {
	t.Parallel()
	assert.True(t, handOf(t, "8S", "8D").CanSplit())
	assert.True(t, handOf(t, "TS", "TD").CanSplit())
	// king and queen are both worth 10 but are not a pair
	assert.False(t, handOf(t, "KS", "QD").CanSplit())
	assert.False(t, handOf(t, "8S", "9D").CanSplit())
	assert.False(t, handOf(t, "8S", "8D", "8C").CanSplit())
}

func TestHandSplit(t *testing.T) {
	t.Parallel()
	h := handOf(t, "8S", "8D")
	next := h.Split()

	require.Len(t, h.Cards(), 1)
	require.Len(t, next.Cards(), 1)
	assert.Equal(t, cards.MustCard(cards.Eight, cards.Spades), h.Cards()[0])
	assert.Equal(t, cards.MustCard(cards.Eight, cards.Diamonds), next.Cards()[0])
	assert.True(t, h.IsSplit())
	assert.True(t, next.IsSplit())
	assert.False(t, h.IsAceSplit())
}

func TestHandSplitAces(t *testing.T) {
	t.Parallel()
	h := handOf(t, "AS", "AD")
	require.True(t, h.HasAcePair())
	next := h.Split()
	assert.True(t, h.IsAceSplit())
	assert.True(t, next.IsAceSplit())
}

func TestHandSplitNeverBlackjack(t *testing.T) {
	t.Parallel()
	h := handOf(t, "AS", "AD")
	next := h.Split()
	h.Hit(cards.MustCard(cards.King, cards.Spades))
	next.Hit(cards.MustCard(cards.Ten, cards.Hearts))

	assert.Equal(t, 21, h.TotalHigh())
	assert.Equal(t, 21, next.TotalHigh())
	assert.False(t, h.IsBlackjack())
	assert.False(t, next.IsBlackjack())
}

func TestHandString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[A♠|6♦]: 7 or 17", handOf(t, "AS", "6D").String())
	assert.Equal(t, "[A♠|K♦]: 11 or 21 BLACKJACK", handOf(t, "AS", "KD").String())
	assert.Equal(t, "[T♠|5♥|6♦]: 21 NICE", handOf(t, "TS", "5H", "6D").String())
}
