package cards

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

const (
	// MinDecks is the minimum number of decks in a shoe.
	MinDecks = 1
	// MaxDecks is the maximum number of decks, matching typical casino shoes.
	MaxDecks = 8

	// averageHandSize is used with the player count to decide whether the
	// shoe holds enough cards for another round.
	averageHandSize = 6
)

// ErrShoeEmpty is returned when dealing from an exhausted shoe. Callers
// should gate each round on CanPlay, so hitting this mid-round is a
// sequencing bug, not a normal condition.
var ErrShoeEmpty = errors.New("no cards left in shoe")

// Shoe is a depleting card supply built from one or more decks. Cards are
// removed from the front as they are dealt and never replaced mid-shoe.
type Shoe struct {
	numDecks int
	cards    []Card
	rng      *rand.Rand
}

// NewShoe builds a shoe of numDecks concatenated decks and shuffles it.
func NewShoe(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if numDecks < MinDecks || numDecks > MaxDecks {
		return nil, fmt.Errorf("num decks must be [%d..%d], got %d", MinDecks, MaxDecks, numDecks)
	}
	s := &Shoe{
		numDecks: numDecks,
		cards:    make([]Card, 0, numDecks*52),
		rng:      rng,
	}
	for i := 0; i < numDecks; i++ {
		s.cards = append(s.cards, NewDeck(rng).Cards()...)
	}
	s.Shuffle()
	return s, nil
}

// NumDecks returns the number of decks the shoe was built from.
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// Size returns the number of cards remaining.
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Cards returns the remaining cards in deal order.
func (s *Shoe) Cards() []Card {
	return s.cards
}

// Shuffle reshuffles the remaining cards.
func (s *Shoe) Shuffle() {
	shuffle(s.cards, s.rng)
}

// Cut rotates the shoe so the card at index at becomes the new front.
func (s *Shoe) Cut(at int) error {
	return cut(s.cards, at)
}

// CanPlay reports whether the shoe holds enough cards to deal another
// round to playerCount seats. This is an average-hand-size heuristic, not
// a hard guarantee; Deal still fails explicitly on true exhaustion.
func (s *Shoe) CanPlay(playerCount int) bool {
	return len(s.cards) >= playerCount*averageHandSize
}

// Deal removes and returns the front card.
func (s *Shoe) Deal() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeEmpty
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// DealHand removes and returns the two cards for the given seat,
// emulating the table deal order of one card per seat per pass: the first
// card comes off the front, the second sits one full pass further on.
func (s *Shoe) DealHand(seatIndex, totalSeats int) ([]Card, error) {
	if !s.CanPlay(totalSeats - seatIndex) {
		return nil, fmt.Errorf("cannot deal seat %d of %d: %w", seatIndex, totalSeats, ErrShoeEmpty)
	}
	first := s.cards[0]
	s.cards = s.cards[1:]

	offset := totalSeats - seatIndex - 1
	second := s.cards[offset]
	s.cards = append(s.cards[:offset], s.cards[offset+1:]...)

	return []Card{first, second}, nil
}
