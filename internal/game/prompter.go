package game

import "github.com/lox/blackjack/internal/cards"

// Move is a player action during their turn.
type Move int

const (
	MoveHit Move = iota
	MoveStand
	MoveDouble
	MoveSplit
)

// String returns the string representation of a move
func (m Move) String() string {
	switch m {
	case MoveHit:
		return "hit"
	case MoveStand:
		return "stand"
	case MoveDouble:
		return "double"
	case MoveSplit:
		return "split"
	default:
		return "unknown"
	}
}

// InsuranceChoice is a player's answer when the dealer shows an ace.
type InsuranceChoice int

const (
	Decline InsuranceChoice = iota
	Insure
	EvenMoney
)

// String returns the string representation of an insurance choice
func (c InsuranceChoice) String() string {
	switch c {
	case Decline:
		return "decline"
	case Insure:
		return "insurance"
	case EvenMoney:
		return "even money"
	default:
		return "unknown"
	}
}

// Prompter is the engine's external decision collaborator: a human
// console, a bot strategy, or a test script. The engine owns all state
// mutation; a Prompter only answers questions. Any method may return
// ErrQuit to request an orderly session shutdown — bets already placed
// are still settled.
type Prompter interface {
	// BetSizes finalizes every player's default bet via SetBet. The
	// engine re-requests until every bet satisfies rules.ValidBet.
	BetSizes(players []*Player, rules Rules) error

	// Move picks one of the valid moves for the hand. Answers outside
	// valid are rejected and re-requested.
	Move(upCard cards.Card, p *Player, h *Hand, valid []Move) (Move, error)

	// Insurance collects the player's insurance decision. EvenMoney is
	// only accepted when it was offered.
	Insurance(p *Player, h *Hand, evenMoneyOffered bool) (InsuranceChoice, error)

	// CutPoint picks where to cut a fresh shoe of shoeSize cards, on
	// behalf of the cutting player. Must be in [1, shoeSize-1]; out of
	// range answers are re-requested.
	CutPoint(cutter *Player, shoeSize int) (int, error)

	// ChangeBets asks whether players want new bet sizes this round.
	ChangeBets() (bool, error)

	// AnotherShoe asks whether to play a fresh shoe once the current
	// one runs too low.
	AnotherShoe(shoesPlayed int) (bool, error)
}
