package game

// MaxHands is the most hands a seat can hold after splits.
const MaxHands = 4

// Seat is the table presence shared by ordinary players and the house:
// a name, a bankroll and the hands in front of it. Distinct house rules
// (single hand, no splits, negative balance) live on Dealer, not here.
type Seat struct {
	name        string
	bankroll    int
	bet         int
	hands       []*Hand
	handsPlayed int
	ledger      *Ledger
}

// Name returns the seat's display name.
func (s *Seat) Name() string {
	return s.name
}

// Bankroll returns the seat's bankroll, in cents.
func (s *Seat) Bankroll() int {
	return s.bankroll
}

// Bet returns the seat's current default bet, in cents.
func (s *Seat) Bet() int {
	return s.bet
}

// SetBet sets the seat's default bet. Range and increment validation is
// the round engine's job at betting time.
func (s *Seat) SetBet(bet int) {
	s.bet = bet
}

// Hands returns the hands played this round, in play order.
func (s *Seat) Hands() []*Hand {
	return s.hands
}

// HandsPlayed returns how many hands the seat has played this session.
func (s *Seat) HandsPlayed() int {
	return s.handsPlayed
}

// HasMaxHands reports whether the seat holds the split limit.
func (s *Seat) HasMaxHands() bool {
	return len(s.hands) >= MaxHands
}

// HasMultipleHands reports whether the seat split this round.
func (s *Seat) HasMultipleHands() bool {
	return len(s.hands) > 1
}

// FinishRound releases the seat's hands.
func (s *Seat) FinishRound() {
	s.hands = nil
}

// credit and debit are the only bankroll mutation points; both keep the
// session ledger in step.
func (s *Seat) credit(amount int) {
	s.bankroll += amount
	if s.ledger != nil {
		s.ledger.apply(amount)
	}
}

func (s *Seat) debit(amount int) {
	s.credit(-amount)
}
