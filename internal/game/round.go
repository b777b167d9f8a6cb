package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

const (
	// blackjackPays is the 3:2 premium: winnings per dollar bet, in
	// halves (3/2).
	blackjackNum, blackjackDen = 3, 2

	// insurancePays is the 2:1 insurance payout multiplier.
	insurancePays = 2
)

func blackjackWinnings(bet int) int {
	return bet * blackjackNum / blackjackDen
}

// RoundConfig wires a Round to its collaborators.
type RoundConfig struct {
	Players  []*Player
	Dealer   *Dealer
	Source   CardSource
	Rules    Rules
	Prompter Prompter
	Events   EventBus
	Ledger   *Ledger
	Logger   *log.Logger

	// Scripted marks the source as externally chosen cards; the engine
	// then skips forced dealer draws at settlement, as the chooser may
	// be gone.
	Scripted bool

	// AskBets forces a fresh bet-size request (first round of a
	// session).
	AskBets bool
}

// Round runs one full round: betting, deal, insurance, player turns,
// dealer turn, settlement, cleanup. Strictly sequential; the shoe and
// every bankroll are touched from this one control flow only.
type Round struct {
	RoundConfig

	broke []*Player
}

// NewRound creates a round from its configuration.
func NewRound(cfg RoundConfig) *Round {
	if cfg.Events == nil {
		cfg.Events = NewEventBus()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Round{RoundConfig: cfg}
}

// Broke returns the players who fell below the table minimum during
// this round, in seat order. Valid after Play returns.
func (r *Round) Broke() []*Player {
	return r.broke
}

// Play runs the round to completion. A quit passed up from a prompt
// after bets are placed still runs settlement so no money is left in
// limbo; Play then returns ErrQuit.
func (r *Round) Play() error {
	if err := r.placeBets(); err != nil {
		// Nothing staked yet; quit or failure unwinds cleanly.
		return err
	}

	err := r.playPhases()
	if err != nil && !errors.Is(err, ErrQuit) {
		return err
	}

	if serr := r.settle(); serr != nil {
		return serr
	}
	r.cleanup()

	if r.Ledger != nil && r.Ledger.Total() != r.Ledger.Granted() {
		return fmt.Errorf("%w: bankrolls sum to %d, granted %d",
			ErrConservation, r.Ledger.Total(), r.Ledger.Granted())
	}
	return err
}

func (r *Round) playPhases() error {
	if err := r.deal(); err != nil {
		return err
	}
	if r.Dealer.Hand().UpCard().IsAce() {
		if err := r.insurance(); err != nil {
			return err
		}
	}
	if r.Dealer.Hand().IsBlackjack() {
		// No further play can change outcomes.
		r.Logger.Debug("dealer has blackjack, skipping play")
		return nil
	}
	if err := r.playerTurns(); err != nil {
		return err
	}
	return r.Dealer.Hand().Play(r.Source)
}

// placeBets finalizes every player's bet and opens a hand per seat.
func (r *Round) placeBets() error {
	ask := r.AskBets || r.needBetChange()
	if !ask {
		change, err := r.Prompter.ChangeBets()
		if err != nil {
			return err
		}
		ask = change
	}
	for ask {
		if err := r.Prompter.BetSizes(r.Players, r.Rules); err != nil {
			return err
		}
		ask = !r.betsValid()
	}

	for _, p := range r.Players {
		h := p.StartHand()
		r.Logger.Debug("bet placed", "player", p.Name(), "bet", h.Bet())
	}
	r.Dealer.StartHand()
	return nil
}

func (r *Round) needBetChange() bool {
	for _, p := range r.Players {
		if p.Bet() > p.Bankroll() {
			return true
		}
	}
	return false
}

func (r *Round) betsValid() bool {
	for _, p := range r.Players {
		if !r.Rules.ValidBet(p.Bet(), p.Bankroll()) {
			return false
		}
	}
	return true
}

// deal gives every seat its two cards in round-robin order, dealer
// last.
func (r *Round) deal() error {
	seats := len(r.Players) + 1
	for i, p := range r.Players {
		dealt, err := r.Source.DealHand(i, seats)
		if err != nil {
			return err
		}
		p.Hands()[0].Deal(dealt)
	}
	dealt, err := r.Source.DealHand(seats-1, seats)
	if err != nil {
		return err
	}
	r.Dealer.Hand().Deal(dealt)
	r.Logger.Debug("dealer dealt", "hand", r.Dealer.Hand().String())
	return nil
}

// insurance runs the side-bet phase when the dealer shows an ace: collect
// every decision, then resolve all side bets before the main round
// continues.
func (r *Round) insurance() error {
	dh := r.Dealer.Hand()
	r.Events.Publish(NewUpCardEvent(dh.UpCard()))

	for _, p := range r.Players {
		h := p.Hands()[0]
		offerEven := r.Rules.EvenMoney && h.IsBlackjack()
		if !p.CanAffordInsurance() && !offerEven {
			continue
		}
		for {
			choice, err := r.Prompter.Insurance(p, h, offerEven)
			if err != nil {
				return err
			}
			switch choice {
			case Insure:
				if !p.CanAffordInsurance() {
					continue
				}
				amount := h.Bet() / 2
				p.PlaceInsuranceBet(h, amount)
				r.Logger.Debug("insurance placed", "player", p.Name(), "amount", amount)
				r.Events.Publish(NewInsurancePlacedEvent(viewOfPlayer(p), amount))
			case EvenMoney:
				if !offerEven {
					continue
				}
				// Guaranteed 1:1 payout in lieu of the 3:2 comparison;
				// the hand is settled here and skipped later.
				p.WinBet(h.Bet() * 2)
				r.Dealer.Pay(h.Bet())
				h.takeEvenMoney()
				r.Logger.Debug("even money taken", "player", p.Name(), "bet", h.Bet())
				r.Events.Publish(NewHandResultEvent(
					viewOfPlayer(p), viewOfHand(h), viewOfDealerHand(dh),
					OutcomeEvenMoney, h.Bet()*2))
			case Decline:
			}
			break
		}
	}

	// Side bets resolve now, win or lose, independent of the main
	// hand's eventual outcome.
	dealerBlackjack := dh.IsBlackjack()
	for _, p := range r.Players {
		h := p.Hands()[0]
		bet := h.InsuranceBet()
		if bet <= 0 {
			continue
		}
		if dealerBlackjack {
			payout := bet * insurancePays
			r.Dealer.Pay(payout)
			p.WinInsuranceBet(payout + bet)
			r.Events.Publish(NewInsuranceResultEvent(viewOfPlayer(p), true, payout+bet))
		} else {
			r.Dealer.WinBet(bet)
			r.Events.Publish(NewInsuranceResultEvent(viewOfPlayer(p), false, bet))
		}
	}
	return nil
}

// playerTurns walks every seat in order, playing every hand the seat
// holds, including hands appended mid-loop by splits.
func (r *Round) playerTurns() error {
	up := r.Dealer.Hand().UpCard()
	for _, p := range r.Players {
		for i := 0; i < len(p.Hands()); i++ {
			h := p.Hands()[i]

			// A one-card hand left behind by a split takes its forced
			// hit before the player acts on it.
			if len(h.Cards()) == 1 && h.IsSplit() {
				if err := r.hitSplitHand(p, h); err != nil {
					return err
				}
			}

			for h.CanHit() && !h.Standing() && !h.Settled() {
				valid := r.validMoves(p, h)
				move, err := r.Prompter.Move(up, p, h, valid)
				if err != nil {
					return err
				}
				if !slices.Contains(valid, move) {
					r.Logger.Debug("move unavailable, re-prompting", "player", p.Name(), "move", move)
					continue
				}
				if err := r.applyMove(p, h, move); err != nil {
					return err
				}
			}
			r.Events.Publish(NewHandPlayedEvent(viewOfPlayer(p), viewOfHand(h), i))
		}
	}
	return nil
}

func (r *Round) validMoves(p *Player, h *Hand) []Move {
	moves := []Move{MoveHit, MoveStand}
	if p.CanDoubleBet() {
		moves = append(moves, MoveDouble)
	}
	if p.CanSplitHand(h) {
		moves = append(moves, MoveSplit)
	}
	return moves
}

func (r *Round) applyMove(p *Player, h *Hand, move Move) error {
	r.Logger.Debug("player move", "player", p.Name(), "move", move, "hand", h.String())
	switch move {
	case MoveHit:
		card, err := r.Source.Deal()
		if err != nil {
			return err
		}
		h.Hit(card)
	case MoveStand:
		h.Stand()
	case MoveDouble:
		if err := p.DoubleBet(h); err != nil {
			return err
		}
		card, err := r.Source.Deal()
		if err != nil {
			return err
		}
		h.Hit(card)
		h.Stand()
	case MoveSplit:
		if _, err := p.SplitHand(h); err != nil {
			return err
		}
		// The original hand takes its forced hit now; the detached
		// hand gets its own when the loop reaches it.
		if err := r.hitSplitHand(p, h); err != nil {
			return err
		}
	}
	return nil
}

// hitSplitHand deals the single forced card to a split hand. Split aces
// then stand unless the hand is a fresh pair of aces (which may split
// again), or the seat is at the hand limit.
func (r *Round) hitSplitHand(p *Player, h *Hand) error {
	card, err := r.Source.Deal()
	if err != nil {
		return err
	}
	h.Hit(card)
	if h.IsAceSplit() && (p.HasMaxHands() || !h.HasAcePair()) {
		h.Stand()
	}
	return nil
}

// settle pays every unsettled hand against the dealer's total. Bust
// hands lose first, before any comparison, even when the dealer also
// busts.
func (r *Round) settle() error {
	dh := r.Dealer.Hand()

	// A quit can leave the dealer unplayed; the dealer always finishes
	// before money moves. Scripted sources skip this: the chooser that
	// supplied the cards is no longer answering.
	if len(dh.Cards()) >= 2 && !dh.IsBlackjack() && dh.Total().Low() < 17 && !r.Scripted {
		if err := dh.Play(r.Source); err != nil {
			return err
		}
	}

	dealerTotal := dh.Total().Low()
	dealerBust := dh.IsBust()
	dealerView := viewOfDealerHand(dh)

	for _, p := range r.Players {
		for _, h := range p.Hands() {
			if h.Settled() {
				continue
			}
			if len(dh.Cards()) < 2 {
				// Quit before the deal completed: nothing to compare,
				// every stake goes back.
				p.WinBet(h.Bet())
				h.settle()
				r.Events.Publish(NewHandResultEvent(viewOfPlayer(p), viewOfHand(h), dealerView, OutcomePush, h.Bet()))
				continue
			}

			var outcome Outcome
			var winnings int
			switch {
			case h.IsBust():
				outcome = OutcomeLose
			case dealerBust || h.TotalHigh() > dealerTotal:
				if h.IsBlackjack() {
					outcome = OutcomeBlackjack
					winnings = h.Bet() + blackjackWinnings(h.Bet())
					r.Dealer.Pay(blackjackWinnings(h.Bet()))
				} else {
					outcome = OutcomeWin
					winnings = h.Bet() * 2
					r.Dealer.Pay(h.Bet())
				}
				p.WinBet(winnings)
			case h.TotalHigh() == dealerTotal:
				outcome = OutcomePush
				winnings = h.Bet()
				p.WinBet(winnings)
			default:
				outcome = OutcomeLose
			}
			if outcome == OutcomeLose {
				r.Dealer.WinBet(h.Bet())
			}
			h.settle()

			r.Logger.Debug("hand settled",
				"player", p.Name(),
				"hand", h.String(),
				"dealer", dh.String(),
				"outcome", outcome,
				"winnings", winnings)
			r.Events.Publish(NewHandResultEvent(viewOfPlayer(p), viewOfHand(h), dealerView, outcome, winnings))
		}
	}
	return nil
}

// cleanup releases every seat's hands and flags broke players.
func (r *Round) cleanup() {
	for _, p := range r.Players {
		p.FinishRound()
	}
	r.Dealer.FinishRound()

	r.broke = nil
	for _, p := range r.Players {
		if p.IsBroke(r.Rules.MinBet) {
			r.broke = append(r.broke, p)
			r.Logger.Debug("player broke", "player", p.Name(), "bankroll", p.Bankroll())
			r.Events.Publish(NewPlayerBrokeEvent(viewOfPlayer(p), r.Rules.MinBet))
		}
	}
}
