package sim

import (
	"fmt"

	"github.com/lox/blackjack/internal/game"
)

// Stats aggregates outcomes across simulated sessions.
type Stats struct {
	Sessions   int
	Rounds     int
	Hands      int
	Wins       int
	Blackjacks int
	Pushes     int
	Losses     int
	Wagered    int // total cents staked on settled hands
	HouseNet   int // dealer's final bankroll summed over sessions
}

// Merge folds other into s.
func (s *Stats) Merge(other *Stats) {
	s.Sessions += other.Sessions
	s.Rounds += other.Rounds
	s.Hands += other.Hands
	s.Wins += other.Wins
	s.Blackjacks += other.Blackjacks
	s.Pushes += other.Pushes
	s.Losses += other.Losses
	s.Wagered += other.Wagered
	s.HouseNet += other.HouseNet
}

// HouseEdge returns the house's take as a fraction of money wagered.
func (s *Stats) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return float64(s.HouseNet) / float64(s.Wagered)
}

// String renders a one-screen report.
func (s *Stats) String() string {
	return fmt.Sprintf(
		"sessions %d  rounds %d  hands %d\nwins %d (blackjacks %d)  pushes %d  losses %d\nwagered $%.2f  house net $%.2f  edge %.3f%%",
		s.Sessions, s.Rounds, s.Hands,
		s.Wins+s.Blackjacks, s.Blackjacks, s.Pushes, s.Losses,
		float64(s.Wagered)/100, float64(s.HouseNet)/100, s.HouseEdge()*100)
}

// collector subscribes to a session's events and tallies outcomes. A
// round is only counted once it produces a hand result: the round the
// budget checkpoint aborts announces itself but never plays.
type collector struct {
	stats   Stats
	rounds  int
	pending bool
}

// OnEvent implements game.EventSubscriber.
func (c *collector) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		c.pending = true
	case game.HandResultEvent:
		if c.pending {
			c.pending = false
			c.rounds++
			c.stats.Rounds++
		}
		c.stats.Hands++
		c.stats.Wagered += e.Hand.Bet
		switch e.Outcome {
		case game.OutcomeWin:
			c.stats.Wins++
		case game.OutcomeBlackjack:
			c.stats.Blackjacks++
		case game.OutcomeEvenMoney:
			c.stats.Blackjacks++
		case game.OutcomePush:
			c.stats.Pushes++
		case game.OutcomeLose:
			c.stats.Losses++
		}
	}
}
