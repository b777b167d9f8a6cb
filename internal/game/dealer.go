package game

import "fmt"

// DealerName is the house's fixed identity.
const DealerName = "Dealer"

// Dealer is the house's seat. It starts at zero and is the only seat
// allowed to go negative; it plays exactly one hand per round and never
// splits or takes insurance.
type Dealer struct {
	Seat
	hitSoft17 bool
	hand      *DealerHand
}

// NewDealer creates the house seat with the table's soft-17 policy.
func NewDealer(hitSoft17 bool, ledger *Ledger) *Dealer {
	return &Dealer{
		Seat: Seat{
			name:   DealerName,
			ledger: ledger,
		},
		hitSoft17: hitSoft17,
	}
}

// HitSoft17 returns the house's soft-17 policy.
func (d *Dealer) HitSoft17() bool {
	return d.hitSoft17
}

// StartHand creates the dealer's hand for the round. No bet is placed;
// the house's money moves only at settlement.
func (d *Dealer) StartHand() *DealerHand {
	d.hand = NewDealerHand(d.hitSoft17)
	d.handsPlayed++
	if d.ledger != nil {
		d.ledger.countHand()
	}
	return d.hand
}

// Hand returns the dealer's hand for the round, or nil before the deal.
func (d *Dealer) Hand() *DealerHand {
	return d.hand
}

// Pay is called when the house loses: the amount leaves the dealer's
// bankroll (which may go negative).
func (d *Dealer) Pay(amount int) {
	d.debit(amount)
}

// WinBet collects a lost bet for the house.
func (d *Dealer) WinBet(amount int) {
	d.credit(amount)
}

// FinishRound releases the dealer's hand.
func (d *Dealer) FinishRound() {
	d.hand = nil
	d.Seat.FinishRound()
}

// String renders "Dealer [$bankroll]".
func (d *Dealer) String() string {
	return fmt.Sprintf("%s [%s]", d.name, formatCents(d.bankroll))
}
