package game

import "fmt"

// Player is a bankroll-bearing seat at the table.
type Player struct {
	Seat
}

// NewPlayer creates a player and records the initial bankroll grant on
// the session ledger.
func NewPlayer(name string, bankroll int, ledger *Ledger) *Player {
	if ledger != nil {
		ledger.Grant(bankroll)
	}
	return &Player{Seat: Seat{
		name:     name,
		bankroll: bankroll,
		ledger:   ledger,
	}}
}

// StartHand creates a new hand, stakes the player's current bet on it
// and returns it.
func (p *Player) StartHand() *Hand {
	h := NewHand()
	p.hands = append(p.hands, h)
	p.handsPlayed++
	if p.ledger != nil {
		p.ledger.countHand()
	}
	p.placeBet(h)
	return h
}

func (p *Player) placeBet(h *Hand) {
	h.bet = p.bet
	p.debit(p.bet)
}

// PlaceInsuranceBet stakes the side bet on the hand.
func (p *Player) PlaceInsuranceBet(h *Hand, amount int) {
	h.insuranceBet = amount
	p.debit(amount)
}

// WinInsuranceBet credits the insurance payout plus the returned side
// bet.
func (p *Player) WinInsuranceBet(winnings int) {
	p.credit(winnings)
}

// WinBet credits winnings (including any returned stake).
func (p *Player) WinBet(winnings int) {
	p.credit(winnings)
}

// CanDoubleBet reports whether the bankroll covers a second bet.
func (p *Player) CanDoubleBet() bool {
	return p.bankroll >= p.bet
}

// DoubleBet doubles the stake on the hand, debiting the bankroll again.
func (p *Player) DoubleBet(h *Hand) error {
	if !p.CanDoubleBet() {
		return fmt.Errorf("%w: cannot double $%d with bankroll $%d", ErrInvalidAction, p.bet, p.bankroll)
	}
	h.bet += p.bet
	p.debit(p.bet)
	return nil
}

// CanAffordInsurance reports whether the bankroll covers half the
// current bet.
func (p *Player) CanAffordInsurance() bool {
	return p.bet/2 <= p.bankroll
}

// CanSplitHand reports whether the hand is a splittable pair, the seat
// is under the hand limit and the bankroll covers the matching bet.
func (p *Player) CanSplitHand(h *Hand) bool {
	return h.CanSplit() && !p.HasMaxHands() && p.bankroll >= p.bet
}

// SplitHand detaches the hand's second card into a new hand, stakes a
// matching bet on it and returns it.
func (p *Player) SplitHand(h *Hand) (*Hand, error) {
	if !p.CanSplitHand(h) {
		return nil, fmt.Errorf("%w: hand cannot be split: %s", ErrInvalidAction, h)
	}
	next := h.Split()
	p.hands = append(p.hands, next)
	p.handsPlayed++
	if p.ledger != nil {
		p.ledger.countHand()
	}
	p.placeBet(next)
	return next, nil
}

// IsBroke reports whether the player can no longer make the table
// minimum.
func (p *Player) IsBroke(minBet int) bool {
	return p.bankroll == 0 || p.bankroll < minBet
}

// String renders "Name [$bet] [$bankroll]" while a hand is live, else
// "Name [$bankroll]".
func (p *Player) String() string {
	if len(p.hands) > 0 {
		return fmt.Sprintf("%s [%s] [%s]", p.name, formatCents(p.bet), formatCents(p.bankroll))
	}
	return fmt.Sprintf("%s [%s]", p.name, formatCents(p.bankroll))
}

func formatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	if cents%100 == 0 {
		return fmt.Sprintf("%s$%d", sign, cents/100)
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
