package domain

import "time"

// Patch types carry partial updates: nil fields are left untouched by the
// store. UpdatedAt is always stamped by the mutating service. OwnerID and
// CreatedAt have no patch fields; ownership and creation time are immutable.

type ProjectPatch struct {
	Title       *string
	Client      *string
	Deadline    *time.Time
	Payment     *float64
	Status      *ProjectStatus
	Description *string
	UpdatedAt   time.Time
}

type ClientPatch struct {
	Name      *string
	Email     *string
	Phone     *string
	Country   *string
	UpdatedAt time.Time
}

type PaymentPatch struct {
	ProjectID   *string
	Amount      *float64
	Status      *PaymentStatus
	DueDate     *time.Time
	PaidDate    *time.Time
	Description *string
	UpdatedAt   time.Time
}
