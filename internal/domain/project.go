package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID          string
	Title       string
	Client      string // denormalized client name as entered on the form
	Deadline    time.Time
	Payment     float64
	Status      ProjectStatus
	Description string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields required before a project can be stored.
func (p *Project) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("project title is required")
	}
	if p.Status != "" && !ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q (ongoing|completed)", p.Status)
	}
	if p.Payment < 0 {
		return fmt.Errorf("project payment must not be negative")
	}
	return nil
}

// Overdue reports whether the project is still ongoing past its deadline.
// A zero deadline means no deadline was set and never counts as overdue.
func (p *Project) Overdue(now time.Time) bool {
	if p.Deadline.IsZero() {
		return false
	}
	return p.Status == ProjectOngoing && p.Deadline.Before(now)
}

// DisplayID returns a short identifier for display: the ID truncated to
// 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
