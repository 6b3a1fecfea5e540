package testutil

import (
	"time"

	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/google/uuid"
)

// TestOwnerID is the identity most fixtures are stamped with.
const TestOwnerID = "owner-1"

// NewTestProject returns an ongoing project owned by TestOwnerID with
// sensible defaults. Override fields on the returned value as needed.
func NewTestProject(title string) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:        uuid.New().String(),
		Title:     title,
		Client:    "Acme Co",
		Deadline:  now.AddDate(0, 1, 0),
		Payment:   1000,
		Status:    domain.ProjectOngoing,
		OwnerID:   TestOwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestClient returns a client owned by TestOwnerID.
func NewTestClient(name string) *domain.Client {
	now := time.Now().UTC()
	return &domain.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     "contact@example.com",
		Phone:     "+1 555 0100",
		OwnerID:   TestOwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestPayment returns a pending payment against the given project,
// owned by TestOwnerID.
func NewTestPayment(projectID string, amount float64) *domain.Payment {
	now := time.Now().UTC()
	return &domain.Payment{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Amount:    amount,
		Status:    domain.PaymentPending,
		DueDate:   now.AddDate(0, 0, 14),
		OwnerID:   TestOwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
