package game

import (
	"time"

	"github.com/lox/blackjack/internal/cards"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart      EventType = "round_start"
	EventTypeUpCard          EventType = "up_card"
	EventTypeHandPlayed      EventType = "hand_played"
	EventTypeInsurancePlaced EventType = "insurance_placed"
	EventTypeInsuranceResult EventType = "insurance_result"
	EventTypeHandResult      EventType = "hand_result"
	EventTypePlayerBroke     EventType = "player_broke"
	EventTypeSessionEnd      EventType = "session_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a session
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory, synchronous event bus
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// PlayerView is a read-only snapshot of a seat for display. Reporting
// callbacks receive views, never live engine state.
type PlayerView struct {
	Name        string
	Bankroll    int
	Bet         int
	HandsPlayed int
	IsDealer    bool
}

// HandView is a read-only snapshot of a hand for display.
type HandView struct {
	Cards     []cards.Card
	Total     Total
	Bet       int
	Blackjack bool
	Bust      bool
	Split     bool
	Text      string
}

func viewOfPlayer(p *Player) PlayerView {
	return PlayerView{
		Name:        p.Name(),
		Bankroll:    p.Bankroll(),
		Bet:         p.Bet(),
		HandsPlayed: p.HandsPlayed(),
	}
}

func viewOfDealer(d *Dealer) PlayerView {
	return PlayerView{
		Name:        d.Name(),
		Bankroll:    d.Bankroll(),
		HandsPlayed: d.HandsPlayed(),
		IsDealer:    true,
	}
}

func viewOfHand(h *Hand) HandView {
	cc := make([]cards.Card, len(h.Cards()))
	copy(cc, h.Cards())
	return HandView{
		Cards:     cc,
		Total:     h.Total(),
		Bet:       h.Bet(),
		Blackjack: h.IsBlackjack(),
		Bust:      h.IsBust(),
		Split:     h.IsSplit(),
		Text:      h.String(),
	}
}

func viewOfDealerHand(d *DealerHand) HandView {
	cc := make([]cards.Card, len(d.Cards()))
	copy(cc, d.Cards())
	return HandView{
		Cards:     cc,
		Total:     d.Total(),
		Blackjack: d.IsBlackjack(),
		Bust:      d.IsBust(),
		Text:      d.String(),
	}
}

// RoundStartEvent is published when a new round begins
type RoundStartEvent struct {
	RoundID   string
	Shoe      int
	Round     int
	Players   []PlayerView
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(roundID string, shoe, round int, players []PlayerView) RoundStartEvent {
	return RoundStartEvent{
		RoundID:   roundID,
		Shoe:      shoe,
		Round:     round,
		Players:   players,
		timestamp: time.Now(),
	}
}

// UpCardEvent is published when the dealer's up card is shown before the
// insurance phase
type UpCardEvent struct {
	Card      cards.Card
	timestamp time.Time
}

func (e UpCardEvent) EventType() EventType { return EventTypeUpCard }
func (e UpCardEvent) Timestamp() time.Time { return e.timestamp }

// NewUpCardEvent creates a new up card event
func NewUpCardEvent(card cards.Card) UpCardEvent {
	return UpCardEvent{Card: card, timestamp: time.Now()}
}

// HandPlayedEvent is published when a hand finishes its turn
type HandPlayedEvent struct {
	Player    PlayerView
	Hand      HandView
	HandIndex int
	timestamp time.Time
}

func (e HandPlayedEvent) EventType() EventType { return EventTypeHandPlayed }
func (e HandPlayedEvent) Timestamp() time.Time { return e.timestamp }

// NewHandPlayedEvent creates a new hand played event
func NewHandPlayedEvent(player PlayerView, hand HandView, index int) HandPlayedEvent {
	return HandPlayedEvent{Player: player, Hand: hand, HandIndex: index, timestamp: time.Now()}
}

// InsurancePlacedEvent is published when a player places the side bet
type InsurancePlacedEvent struct {
	Player    PlayerView
	Amount    int
	timestamp time.Time
}

func (e InsurancePlacedEvent) EventType() EventType { return EventTypeInsurancePlaced }
func (e InsurancePlacedEvent) Timestamp() time.Time { return e.timestamp }

// NewInsurancePlacedEvent creates a new insurance placed event
func NewInsurancePlacedEvent(player PlayerView, amount int) InsurancePlacedEvent {
	return InsurancePlacedEvent{Player: player, Amount: amount, timestamp: time.Now()}
}

// InsuranceResultEvent is published when a side bet resolves
type InsuranceResultEvent struct {
	Player    PlayerView
	Won       bool
	Amount    int // payout when won, forfeited stake when lost
	timestamp time.Time
}

func (e InsuranceResultEvent) EventType() EventType { return EventTypeInsuranceResult }
func (e InsuranceResultEvent) Timestamp() time.Time { return e.timestamp }

// NewInsuranceResultEvent creates a new insurance result event
func NewInsuranceResultEvent(player PlayerView, won bool, amount int) InsuranceResultEvent {
	return InsuranceResultEvent{Player: player, Won: won, Amount: amount, timestamp: time.Now()}
}

// Outcome classifies how a hand settled against the dealer.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeBlackjack
	OutcomePush
	OutcomeLose
	OutcomeEvenMoney
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomePush:
		return "push"
	case OutcomeLose:
		return "lose"
	case OutcomeEvenMoney:
		return "even money"
	default:
		return "unknown"
	}
}

// HandResultEvent is published when a hand settles
type HandResultEvent struct {
	Player    PlayerView
	Hand      HandView
	Dealer    HandView
	Outcome   Outcome
	Winnings  int // amount credited to the player, including returned stake
	timestamp time.Time
}

func (e HandResultEvent) EventType() EventType { return EventTypeHandResult }
func (e HandResultEvent) Timestamp() time.Time { return e.timestamp }

// NewHandResultEvent creates a new hand result event
func NewHandResultEvent(player PlayerView, hand, dealer HandView, outcome Outcome, winnings int) HandResultEvent {
	return HandResultEvent{
		Player:    player,
		Hand:      hand,
		Dealer:    dealer,
		Outcome:   outcome,
		Winnings:  winnings,
		timestamp: time.Now(),
	}
}

// PlayerBrokeEvent is published when a player leaves the roster broke
type PlayerBrokeEvent struct {
	Player    PlayerView
	MinBet    int
	timestamp time.Time
}

func (e PlayerBrokeEvent) EventType() EventType { return EventTypePlayerBroke }
func (e PlayerBrokeEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerBrokeEvent creates a new player broke event
func NewPlayerBrokeEvent(player PlayerView, minBet int) PlayerBrokeEvent {
	return PlayerBrokeEvent{Player: player, MinBet: minBet, timestamp: time.Now()}
}

// SessionEndEvent is published once with the final summary
type SessionEndEvent struct {
	Players   []PlayerView // broke players first, in the order they left
	Dealer    PlayerView
	Rounds    int
	Shoes     int
	timestamp time.Time
}

func (e SessionEndEvent) EventType() EventType { return EventTypeSessionEnd }
func (e SessionEndEvent) Timestamp() time.Time { return e.timestamp }

// NewSessionEndEvent creates a new session end event
func NewSessionEndEvent(players []PlayerView, dealer PlayerView, rounds, shoes int) SessionEndEvent {
	return SessionEndEvent{
		Players:   players,
		Dealer:    dealer,
		Rounds:    rounds,
		Shoes:     shoes,
		timestamp: time.Now(),
	}
}
