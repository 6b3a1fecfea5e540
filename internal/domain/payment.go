package domain

import (
	"fmt"
	"time"
)

type Payment struct {
	ID          string
	ProjectID   string // SHOULD reference a project; dangling references are tolerated
	Amount      float64
	Status      PaymentStatus
	DueDate     time.Time
	PaidDate    *time.Time
	Description string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields required before a payment can be stored.
func (p *Payment) Validate() error {
	if p.ProjectID == "" {
		return fmt.Errorf("payment project ID is required")
	}
	if p.Status != "" && !ValidPaymentStatuses[string(p.Status)] {
		return fmt.Errorf("invalid payment status %q (pending|paid|partial|refunded)", p.Status)
	}
	if p.Amount < 0 {
		return fmt.Errorf("payment amount must not be negative")
	}
	return nil
}

// Overdue reports whether the payment is still pending past its due date.
// A zero due date means none was set and never counts as overdue.
func (p *Payment) Overdue(now time.Time) bool {
	if p.DueDate.IsZero() {
		return false
	}
	return p.Status == PaymentPending && p.DueDate.Before(now)
}
