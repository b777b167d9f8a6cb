package game

import "errors"

var (
	// ErrQuit is returned by a Prompter when the player asks to leave.
	// The engine settles any staked round before passing it up, so a
	// quit never strands money.
	ErrQuit = errors.New("player quit")

	// ErrInvalidAction is wrapped by operations asked to do something
	// the current state forbids, like doubling without the bankroll to
	// cover it.
	ErrInvalidAction = errors.New("invalid action")

	// ErrConservation is returned when the sum of all bankrolls drifts
	// from the total granted. Money only moves between seats, so any
	// drift is an engine bug.
	ErrConservation = errors.New("bankroll conservation violated")
)
