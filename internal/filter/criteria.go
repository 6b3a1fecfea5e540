package filter

import "time"

// DefaultAmountMax is the upper bound applied when no amount range is
// chosen. Records above it are hidden until the caller widens the
// range; the ceiling is part of the product behavior, not a limit of
// the engine.
const DefaultAmountMax = 100000

// DateRange bounds a time field inclusively. Nil endpoints are open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// AmountRange bounds a money field inclusively.
type AmountRange struct {
	Min float64
	Max float64
}

// Criteria describes one filter pass. All populated conditions must
// hold for a record to survive.
type Criteria struct {
	Search string
	Status string
	Dates  DateRange
	Amount AmountRange
}

// DefaultCriteria is the state of a freshly opened list view: no
// search, no status, open dates, amounts from 0 to DefaultAmountMax.
func DefaultCriteria() Criteria {
	return Criteria{
		Amount: AmountRange{Min: 0, Max: DefaultAmountMax},
	}
}
