package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/randutil"
)

// Session is a full sitting at the table: repeated shoes of repeated
// rounds, until the players quit or go broke.
type Session struct {
	rules    Rules
	prompter Prompter
	events   EventBus
	logger   *log.Logger
	rng      *rand.Rand
	ledger   *Ledger

	players []*Player
	broke   []*Player
	dealer  *Dealer

	scriptedSrc CardSource

	numRounds int
	numShoes  int
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithLogger sets the session's debug logger.
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// WithEventBus sets the event bus reporting callbacks subscribe to.
func WithEventBus(bus EventBus) SessionOption {
	return func(s *Session) { s.events = bus }
}

// WithRNG sets the session's random source, for deterministic play.
func WithRNG(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithScriptedDeals replaces the shoe with an external card chooser.
// The shoe still exists and still gates rounds via its depletion
// heuristic, but every dealt card comes from the script.
func WithScriptedDeals(src CardSource) SessionOption {
	return func(s *Session) { s.scriptedSrc = src }
}

// NewSession creates a session with one player per name plus the house.
func NewSession(rules Rules, names []string, prompter Prompter, opts ...SessionOption) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if len(names) < 1 || len(names) > rules.MaxPlayers {
		return nil, fmt.Errorf("player count must be [1..%d], got %d", rules.MaxPlayers, len(names))
	}
	if prompter == nil {
		return nil, errors.New("prompter is required")
	}

	s := &Session{
		rules:    rules,
		prompter: prompter,
		ledger:   NewLedger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.events == nil {
		s.events = NewEventBus()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.rng == nil {
		s.rng = randutil.New(time.Now().UnixNano())
	}

	for _, name := range names {
		s.players = append(s.players, NewPlayer(name, rules.Bankroll, s.ledger))
	}
	s.dealer = NewDealer(rules.HitSoft17, s.ledger)
	return s, nil
}

// Events returns the bus for subscribing reporting callbacks.
func (s *Session) Events() EventBus {
	return s.events
}

// Players returns the active (non-broke) roster.
func (s *Session) Players() []*Player {
	return s.players
}

// Dealer returns the house seat.
func (s *Session) Dealer() *Dealer {
	return s.dealer
}

// Ledger returns the session's bankroll aggregate.
func (s *Session) Ledger() *Ledger {
	return s.ledger
}

// Rounds returns how many rounds have completed.
func (s *Session) Rounds() int {
	return s.numRounds
}

// Run plays shoes until the players quit, all go broke, or decline a
// fresh shoe. A quit raised mid-round still settles that round first.
func (s *Session) Run() error {
	for {
		shoe, err := cards.NewShoe(s.rules.Decks, s.rng)
		if err != nil {
			return s.finish(err)
		}
		s.logger.Info("new shoe", "decks", shoe.NumDecks(), "cards", shoe.Size())

		if err := s.cutShoe(shoe); err != nil {
			if errors.Is(err, ErrQuit) {
				return s.finish(nil)
			}
			return s.finish(err)
		}

		var src CardSource = shoe
		if s.scriptedSrc != nil {
			src = s.scriptedSrc
		}

		for shoe.CanPlay(len(s.players) + 1) {
			if err := s.playRound(src); err != nil {
				if errors.Is(err, ErrQuit) {
					return s.finish(nil)
				}
				return s.finish(err)
			}
			if len(s.players) == 0 {
				s.logger.Info("all players broke, session over")
				return s.finish(nil)
			}
		}
		s.numShoes++

		again, err := s.prompter.AnotherShoe(s.numShoes)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return s.finish(nil)
			}
			return s.finish(err)
		}
		if !again {
			return s.finish(nil)
		}
	}
}

// cutShoe lets a randomly chosen player cut the fresh shoe, re-asking
// until the cut point lands between two cards.
func (s *Session) cutShoe(shoe *cards.Shoe) error {
	cutter := s.players[s.rng.IntN(len(s.players))]
	for {
		at, err := s.prompter.CutPoint(cutter, shoe.Size())
		if err != nil {
			return err
		}
		if err := shoe.Cut(at); err != nil {
			s.logger.Debug("invalid cut, re-prompting", "at", at, "err", err)
			continue
		}
		s.logger.Debug("shoe cut", "by", cutter.Name(), "at", at, "cards", shoe.Cards())
		return nil
	}
}

func (s *Session) playRound(src CardSource) error {
	roundID := uuid.NewString()
	s.events.Publish(NewRoundStartEvent(roundID, s.numShoes+1, s.numRounds+1, s.playerViews()))
	s.logger.Info("round starting", "round_id", roundID, "round", s.numRounds+1, "shoe", s.numShoes+1)

	round := NewRound(RoundConfig{
		Players:  s.players,
		Dealer:   s.dealer,
		Source:   src,
		Rules:    s.rules,
		Prompter: s.prompter,
		Events:   s.events,
		Ledger:   s.ledger,
		Logger:   s.logger,
		Scripted: s.scriptedSrc != nil,
		AskBets:  s.numRounds == 0,
	})

	err := round.Play()
	if err == nil || errors.Is(err, ErrQuit) {
		s.numRounds++
		s.removeBroke(round.Broke())
	}
	return err
}

func (s *Session) removeBroke(broke []*Player) {
	for _, p := range broke {
		for i, active := range s.players {
			if active == p {
				s.players = append(s.players[:i], s.players[i+1:]...)
				break
			}
		}
		s.broke = append(s.broke, p)
	}
}

func (s *Session) finish(err error) error {
	views := make([]PlayerView, 0, len(s.broke)+len(s.players))
	for _, p := range s.broke {
		views = append(views, viewOfPlayer(p))
	}
	for _, p := range s.players {
		views = append(views, viewOfPlayer(p))
	}
	s.events.Publish(NewSessionEndEvent(views, viewOfDealer(s.dealer), s.numRounds, s.numShoes))
	return err
}

func (s *Session) playerViews() []PlayerView {
	views := make([]PlayerView, 0, len(s.players)+1)
	for _, p := range s.players {
		views = append(views, viewOfPlayer(p))
	}
	views = append(views, viewOfDealer(s.dealer))
	return views
}
