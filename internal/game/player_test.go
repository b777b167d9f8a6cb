package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerGrantsBankroll(t *testing.T) {
	t.Parallel()
	ledger := NewLedger()
	p := NewPlayer("Alice", 100000, ledger)

	assert.Equal(t, "Alice", p.Name())
	assert.Equal(t, 100000, p.Bankroll())
	assert.Equal(t, 100000, ledger.Granted())
	assert.Equal(t, 100000, ledger.Total())
}

func TestPlayerStartHandStakesBet(t *testing.T) {
	t.Parallel()
	ledger := NewLedger()
	p := NewPlayer("Alice", 100000, ledger)
	p.SetBet(1000)

	h := p.StartHand()
	assert.Equal(t, 1000, h.Bet())
	assert.Equal(t, 99000, p.Bankroll())
	assert.Equal(t, 1, p.HandsPlayed())
	assert.Equal(t, 1, ledger.HandsDealt())

	// the stake is on the table, not destroyed
	assert.Equal(t, 99000, ledger.Total())

	p.WinBet(2000)
	assert.Equal(t, 101000, p.Bankroll())
}

func TestPlayerDoubleBet(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 2000, NewLedger())
	p.SetBet(1000)
	h := p.StartHand()

	require.True(t, p.CanDoubleBet())
	require.NoError(t, p.DoubleBet(h))
	assert.Equal(t, 2000, h.Bet())
	assert.Equal(t, 0, p.Bankroll())

	assert.False(t, p.CanDoubleBet())
	assert.ErrorIs(t, p.DoubleBet(h), ErrInvalidAction)
}

func TestPlayerSplitHand(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 100000, NewLedger())
	p.SetBet(1000)
	h := p.StartHand()
	h.Deal(mustCards(t, "8S", "8D"))

	require.True(t, p.CanSplitHand(h))
	next, err := p.SplitHand(h)
	require.NoError(t, err)

	assert.Equal(t, 1000, next.Bet())
	assert.Equal(t, 98000, p.Bankroll())
	assert.Len(t, p.Hands(), 2)
	assert.True(t, p.HasMultipleHands())
	assert.Equal(t, 2, p.HandsPlayed())
}

func TestPlayerCannotSplitNonPair(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 100000, NewLedger())
	p.SetBet(1000)
	h := p.StartHand()
	h.Deal(mustCards(t, "8S", "9D"))

	assert.False(t, p.CanSplitHand(h))
	_, err := p.SplitHand(h)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestPlayerCannotSplitBeyondMaxHands(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 100000, NewLedger())
	p.SetBet(1000)
	h := p.StartHand()
	h.Deal(mustCards(t, "8S", "8D"))
	for i := 1; i < MaxHands; i++ {
		p.hands = append(p.hands, NewHand())
	}

	assert.True(t, p.HasMaxHands())
	assert.False(t, p.CanSplitHand(h))
}

func TestPlayerCannotSplitWithoutBankroll(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 1500, NewLedger())
	p.SetBet(1000)
	h := p.StartHand()
	h.Deal(mustCards(t, "8S", "8D"))

	// 500 left cannot cover the matching 1000 bet
	assert.False(t, p.CanSplitHand(h))
}

func TestPlayerInsurance(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 2000, NewLedger())
	p.SetBet(1000)
	h := p.StartHand()

	require.True(t, p.CanAffordInsurance())
	p.PlaceInsuranceBet(h, 500)
	assert.Equal(t, 500, h.InsuranceBet())
	assert.Equal(t, 500, p.Bankroll())

	p.WinInsuranceBet(1500)
	assert.Equal(t, 2000, p.Bankroll())
}

func TestPlayerCannotAffordInsurance(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 1200, NewLedger())
	p.SetBet(1000)
	p.StartHand()

	// 200 left, half the bet is 500
	assert.False(t, p.CanAffordInsurance())
}

func TestPlayerIsBroke(t *testing.T) {
	t.Parallel()
	minBet := 100
	assert.True(t, NewPlayer("a", 0, nil).IsBroke(minBet))
	assert.True(t, NewPlayer("b", 99, nil).IsBroke(minBet))
	assert.False(t, NewPlayer("c", 100, nil).IsBroke(minBet))
}

func TestPlayerString(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 100050, nil)
	assert.Equal(t, "Alice [$1000.50]", p.String())

	p.SetBet(1000)
	p.StartHand()
	assert.Equal(t, "Alice [$10] [$990.50]", p.String())
}
