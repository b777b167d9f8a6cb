package game

import (
	"strings"

	"github.com/lox/blackjack/internal/cards"
)

// Hand is one blackjack hand: its cards plus the money riding on it.
// A hand created by a split starts with a single card and is marked so
// an ace+ten after a split never counts as blackjack.
type Hand struct {
	cards        []cards.Card
	bet          int
	insuranceBet int

	split     bool
	aceSplit  bool
	evenMoney bool
	standing  bool
	settled   bool
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// Cards returns the cards in deal order.
func (h *Hand) Cards() []cards.Card {
	return h.cards
}

// Bet returns the amount staked on the hand, in cents.
func (h *Hand) Bet() int {
	return h.bet
}

// InsuranceBet returns the insurance side bet, in cents.
func (h *Hand) InsuranceBet() int {
	return h.insuranceBet
}

// IsSplit reports whether the hand came from (or produced) a split.
func (h *Hand) IsSplit() bool {
	return h.split
}

// IsAceSplit reports whether the hand came from splitting a pair of aces.
func (h *Hand) IsAceSplit() bool {
	return h.aceSplit
}

// IsEvenMoney reports whether the hand took the even-money payout.
func (h *Hand) IsEvenMoney() bool {
	return h.evenMoney
}

// Standing reports whether the hand is frozen.
func (h *Hand) Standing() bool {
	return h.standing
}

// Settled reports whether the hand has already been paid out. A settled
// hand is terminal: the round's final comparison skips it.
func (h *Hand) Settled() bool {
	return h.settled
}

// Deal populates the hand with its initial cards.
func (h *Hand) Deal(dealt []cards.Card) {
	h.cards = dealt
}

// Hit adds a card to the hand.
func (h *Hand) Hit(c cards.Card) {
	h.cards = append(h.cards, c)
}

// Stand freezes the hand. Soft totals collapse to the high reading from
// here on.
func (h *Hand) Stand() {
	h.standing = true
}

// Total returns the hand's value. The result is soft while the hand
// holds an ace, the hard sum is below 12 and the hand has not been
// forced to resolve by standing.
func (h *Hand) Total() Total {
	sum := 0
	for _, c := range h.cards {
		sum += c.Value()
	}
	if h.hasAce() && sum < 12 {
		if h.standing {
			return Hard(sum + 10)
		}
		return Soft(sum)
	}
	return Hard(sum)
}

// TotalHigh always yields a single value: the soft (higher) alternative
// when the hand is soft, else the hard total.
func (h *Hand) TotalHigh() int {
	return h.Total().High()
}

// IsSoft reports whether Total yields two alternatives.
func (h *Hand) IsSoft() bool {
	return h.Total().IsSoft()
}

// IsBust reports whether the hand exceeded 21. A bust hand's hard sum is
// at least 22, which pushes out any soft ambiguity.
func (h *Hand) IsBust() bool {
	return h.Total().High() > 21
}

// CanHit reports whether the hand may take another card. A hand at
// exactly 21 (hard or soft) cannot be hit.
func (h *Hand) CanHit() bool {
	return h.Total().High() < 21
}

// IsBlackjack reports an untouched two-card 21: an ace plus a ten-value
// card. Hands produced by splitting never qualify.
func (h *Hand) IsBlackjack() bool {
	if len(h.cards) != 2 || h.split || !h.hasAce() {
		return false
	}
	return h.cards[0].Value() == 10 || h.cards[1].Value() == 10
}

// CanSplit reports whether the hand is a splittable pair.
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// Split detaches the second card into a new hand. Both hands are marked
// as splits; splitting aces additionally marks both for the one-card
// rule.
func (h *Hand) Split() *Hand {
	aces := h.hasAcePair()
	h.split = true
	if aces {
		h.aceSplit = true
	}

	next := NewHand()
	next.split = true
	next.aceSplit = aces
	next.Hit(h.cards[1])
	h.cards = h.cards[:1]
	return next
}

// HasAcePair reports a hand of exactly two aces.
func (h *Hand) HasAcePair() bool {
	return h.hasAcePair()
}

func (h *Hand) hasAce() bool {
	for _, c := range h.cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

func (h *Hand) hasAcePair() bool {
	return len(h.cards) == 2 && h.cards[0].IsAce() && h.cards[1].IsAce()
}

// takeEvenMoney marks the guaranteed 1:1 payout and closes the hand.
func (h *Hand) takeEvenMoney() {
	h.evenMoney = true
	h.standing = true
	h.settled = true
}

// settle marks the hand paid out.
func (h *Hand) settle() {
	h.settled = true
}

// String renders the hand as "[A♠|6♦]: 7 or 17" with a tag for busts,
// blackjacks and made 21s.
func (h *Hand) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, c := range h.cards {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]: ")
	b.WriteString(h.Total().String())
	switch {
	case h.IsBust():
		b.WriteString(" BUSTED")
	case h.IsBlackjack():
		b.WriteString(" BLACKJACK")
	case h.TotalHigh() == 21:
		b.WriteString(" NICE")
	}
	return b.String()
}
