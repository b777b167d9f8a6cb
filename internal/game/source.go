package game

import (
	"errors"

	"github.com/lox/blackjack/internal/cards"
)

// ErrScriptExhausted is returned when a scripted source runs out of
// cards.
var ErrScriptExhausted = errors.New("scripted source exhausted")

// CardSource supplies cards to the round engine. The shoe is the normal
// source; a scripted source substitutes chosen cards for deterministic
// demos and tests without touching the engine's control flow.
type CardSource interface {
	// Deal removes and returns the next card.
	Deal() (cards.Card, error)
	// DealHand removes and returns the two initial cards for a seat,
	// honoring the round-robin deal order where it applies.
	DealHand(seatIndex, totalSeats int) ([]cards.Card, error)
}

// Scripted is a CardSource that asks an external chooser for every card.
// Depletion bookkeeping of any underlying shoe is deliberately not
// updated; this source is for controlled scenarios only.
type Scripted struct {
	choose func() (cards.Card, error)
}

// NewScripted creates a scripted source backed by a chooser function.
func NewScripted(choose func() (cards.Card, error)) *Scripted {
	return &Scripted{choose: choose}
}

// Script creates a scripted source that deals the given cards in order.
func Script(deal ...cards.Card) *Scripted {
	queue := deal
	return NewScripted(func() (cards.Card, error) {
		if len(queue) == 0 {
			return cards.Card{}, ErrScriptExhausted
		}
		c := queue[0]
		queue = queue[1:]
		return c, nil
	})
}

// ScriptCodes creates a scripted source from card codes such as "AS",
// "TH". It panics on malformed codes; intended for tests and demos.
func ScriptCodes(codes ...string) *Scripted {
	queue := make([]cards.Card, len(codes))
	for i, code := range codes {
		c, err := cards.Parse(code)
		if err != nil {
			panic(err)
		}
		queue[i] = c
	}
	return Script(queue...)
}

// Deal returns the next chosen card.
func (s *Scripted) Deal() (cards.Card, error) {
	return s.choose()
}

// DealHand returns the next two chosen cards. Scripted hands are chosen
// per seat, so there is no round-robin offset to emulate.
func (s *Scripted) DealHand(seatIndex, totalSeats int) ([]cards.Card, error) {
	first, err := s.choose()
	if err != nil {
		return nil, err
	}
	second, err := s.choose()
	if err != nil {
		return nil, err
	}
	return []cards.Card{first, second}, nil
}
