package game

import (
	"strings"

	"github.com/lox/blackjack/internal/cards"
)

// DealerHand is the house's hand. Its total is always single-valued:
// the soft-17 house policy decides how an ace resolves, so callers never
// see the dual reading.
type DealerHand struct {
	Hand
	hitSoft17 bool
}

// NewDealerHand creates an empty dealer hand with the house's soft-17
// policy.
func NewDealerHand(hitSoft17 bool) *DealerHand {
	return &DealerHand{hitSoft17: hitSoft17}
}

// UpCard returns the first dealt card, shown face up before the hole
// card is revealed. Concealing the hole card is the display layer's
// concern; the engine always holds both cards.
func (d *DealerHand) UpCard() cards.Card {
	return d.cards[0]
}

// Total resolves the hand to a single value. A soft total above 17 takes
// the high reading; a soft 17 stands unless the house hits soft 17, in
// which case the hard total comes back to signal the hand is still
// playable.
func (d *DealerHand) Total() Total {
	sum := 0
	for _, c := range d.cards {
		sum += c.Value()
	}
	if d.hasAce() && sum < 12 {
		soft := sum + 10
		if soft > 17 {
			return Hard(soft)
		}
		if soft == 17 && !d.hitSoft17 {
			return Hard(soft)
		}
	}
	return Hard(sum)
}

// TotalHigh matches Total; the dealer's value is never ambiguous.
func (d *DealerHand) TotalHigh() int {
	return d.Total().Low()
}

// IsSoft is always false: house policy resolves the ace.
func (d *DealerHand) IsSoft() bool {
	return false
}

// IsBust reports whether the dealer exceeded 21.
func (d *DealerHand) IsBust() bool {
	return d.Total().Low() > 21
}

// CanHit reports whether the dealer may draw another card.
func (d *DealerHand) CanHit() bool {
	return d.Total().Low() < 21
}

// Play runs the dealer's deterministic autoplay: draw while the total is
// below 17 (soft 17 counting per house policy), then stand.
func (d *DealerHand) Play(src CardSource) error {
	for d.CanHit() && d.Total().Low() < 17 {
		card, err := src.Deal()
		if err != nil {
			return err
		}
		d.Hit(card)
	}
	d.Stand()
	return nil
}

// String renders like Hand.String, minus the "NICE" tag; the house gets
// no compliments.
func (d *DealerHand) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, c := range d.cards {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]: ")
	b.WriteString(d.Total().String())
	switch {
	case d.IsBust():
		b.WriteString(" BUSTED")
	case d.IsBlackjack():
		b.WriteString(" BLACKJACK")
	}
	return b.String()
}
