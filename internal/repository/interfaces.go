package repository

import (
	"context"

	"github.com/alexanderramin/lancer/internal/domain"
)

// The three record repos are the concrete stand-in for the remote
// document store: equality-filtered owner listing, add, partial update,
// delete by id. Ownership is scoped only through ListByOwner and the
// id resolution built on it; Update and Delete act on whatever id they
// are handed, with no owner predicate of their own.

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) error
	Delete(ctx context.Context, id string) error
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Update(ctx context.Context, id string, patch domain.ClientPatch) error
	Delete(ctx context.Context, id string) error
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Payment, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Payment, error)
	Update(ctx context.Context, id string, patch domain.PaymentPatch) error
	Delete(ctx context.Context, id string) error
}

// Account is the persisted auth principal backing a domain.Identity.
type Account struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Provider     string // empty for password accounts
}

// Identity converts the stored account to its session-facing view.
func (a *Account) Identity() *domain.Identity {
	return &domain.Identity{ID: a.ID, DisplayName: a.DisplayName, Email: a.Email}
}

type AccountRepo interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdateDisplayName(ctx context.Context, id, displayName string) error
}

// AuthSessionRepo persists login tokens so a session survives restarts.
type AuthSessionRepo interface {
	Create(ctx context.Context, token, accountID string) error
	Resolve(ctx context.Context, token string) (accountID string, err error)
	Delete(ctx context.Context, token string) error
}
