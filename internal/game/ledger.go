package game

// Ledger is the session-owned bankroll aggregate. Every bankroll
// mutation reports its delta here, so the session can assert that
// settlement is a closed system: outside the initial grants, money only
// moves between seats.
type Ledger struct {
	granted    int
	total      int
	handsDealt int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Grant records an initial bankroll grant at player creation. This is
// the only operation that changes how much money the session contains.
func (l *Ledger) Grant(amount int) {
	l.granted += amount
	l.total += amount
}

// Granted returns the sum of all initial grants, in cents.
func (l *Ledger) Granted() int {
	return l.granted
}

// Total returns the current sum of all bankrolls, in cents. Mid-round it
// runs below Granted by exactly the money staked on the table.
func (l *Ledger) Total() int {
	return l.total
}

// HandsDealt returns the session-wide count of hands started.
func (l *Ledger) HandsDealt() int {
	return l.handsDealt
}

func (l *Ledger) apply(delta int) {
	l.total += delta
}

func (l *Ledger) countHand() {
	l.handsDealt++
}
