// Package service implements the write path for the signed-in user's
// records. Every mutation requires an authenticated session, stamps
// server-side fields, writes through the repository and announces the
// change on the hub so live views catch up. Reads always go through
// the store; services never patch an in-memory view directly.
package service

import (
	"context"

	"github.com/alexanderramin/lancer/internal/domain"
)

type ProjectService interface {
	Add(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) error
	Remove(ctx context.Context, id string) error
}

type ClientService interface {
	Add(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id string, patch domain.ClientPatch) error
	Remove(ctx context.Context, id string) error
}

type PaymentService interface {
	Add(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Payment, error)
	Update(ctx context.Context, id string, patch domain.PaymentPatch) error
	Remove(ctx context.Context, id string) error
}
