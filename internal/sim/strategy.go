package sim

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

// mimicPrompter is the simulator's auto player: it flat-bets the table
// minimum and plays the dealer's own strategy (hit to 17), never
// doubling, splitting or insuring. It quits cooperatively once the
// round budget is spent.
type mimicPrompter struct {
	rng       *rand.Rand
	collector *collector
	maxRounds int
}

var _ game.Prompter = (*mimicPrompter)(nil)

// BetSizes implements game.Prompter.
func (m *mimicPrompter) BetSizes(players []*game.Player, rules game.Rules) error {
	for _, p := range players {
		p.SetBet(rules.MinBet)
	}
	return nil
}

// Move implements game.Prompter.
func (m *mimicPrompter) Move(upCard cards.Card, p *game.Player, h *game.Hand, valid []game.Move) (game.Move, error) {
	if h.TotalHigh() < 17 {
		return game.MoveHit, nil
	}
	return game.MoveStand, nil
}

// Insurance implements game.Prompter.
func (m *mimicPrompter) Insurance(p *game.Player, h *game.Hand, evenMoneyOffered bool) (game.InsuranceChoice, error) {
	return game.Decline, nil
}

// CutPoint implements game.Prompter.
func (m *mimicPrompter) CutPoint(cutter *game.Player, shoeSize int) (int, error) {
	return 1 + m.rng.IntN(shoeSize-1), nil
}

// ChangeBets implements game.Prompter. This is asked at the top of
// every round after the first, which makes it the budget checkpoint:
// quitting here means no bets are staked yet.
func (m *mimicPrompter) ChangeBets() (bool, error) {
	if m.collector.rounds >= m.maxRounds {
		return false, game.ErrQuit
	}
	return false, nil
}

// AnotherShoe implements game.Prompter.
func (m *mimicPrompter) AnotherShoe(shoesPlayed int) (bool, error) {
	return m.collector.rounds < m.maxRounds, nil
}
