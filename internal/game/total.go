package game

import "fmt"

// Total is a blackjack hand value. A soft total carries two readings at
// once: the low (aces as 1) and the high (one ace as 11). A hard total
// has a single reading.
type Total struct {
	low  int
	soft bool
}

// Hard creates a single-valued total.
func Hard(n int) Total {
	return Total{low: n}
}

// Soft creates a dual-valued total; High is Low plus 10.
func Soft(n int) Total {
	return Total{low: n, soft: true}
}

// IsSoft reports whether the total has two readings.
func (t Total) IsSoft() bool {
	return t.soft
}

// Low returns the aces-as-1 reading.
func (t Total) Low() int {
	return t.low
}

// High returns the best reading: Low+10 when soft, else Low.
func (t Total) High() int {
	if t.soft {
		return t.low + 10
	}
	return t.low
}

// String renders "7 or 17" for a soft total, "17" for a hard one.
func (t Total) String() string {
	if t.soft {
		return fmt.Sprintf("%d or %d", t.low, t.High())
	}
	return fmt.Sprintf("%d", t.low)
}
