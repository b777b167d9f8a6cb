package cards

import (
	"fmt"
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new unshuffled 52-card deck with an explicit RNG.
// The RNG is required to make randomness explicit and testing deterministic.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
	return d
}

// Cards returns the remaining cards in order.
func (d *Deck) Cards() []Card {
	return d.cards
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	shuffle(d.cards, d.rng)
}

// Cut rotates the deck so the card at index at becomes the new front.
// The cut point must fall between two cards: 1 <= at < len.
func (d *Deck) Cut(at int) error {
	return cut(d.cards, at)
}

func shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		cards[i], cards[j] = cards[j], cards[i]
	}
}

func cut(cards []Card, at int) error {
	if at < 1 || at >= len(cards) {
		return fmt.Errorf("cut point must be [1..%d], got %d", len(cards)-1, at)
	}
	rotated := make([]Card, 0, len(cards))
	rotated = append(rotated, cards[at:]...)
	rotated = append(rotated, cards[:at]...)
	copy(cards, rotated)
	return nil
}
