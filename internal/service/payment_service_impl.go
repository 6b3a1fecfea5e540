package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/lancer/internal/auth"
	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/live"
	"github.com/alexanderramin/lancer/internal/repository"
	"github.com/google/uuid"
)

type paymentService struct {
	payments repository.PaymentRepo
	session  *auth.Session
	hub      *live.Hub
	log      *slog.Logger
}

func NewPaymentService(payments repository.PaymentRepo, session *auth.Session, hub *live.Hub, log *slog.Logger) PaymentService {
	return &paymentService{payments: payments, session: session, hub: hub, log: log}
}

func (s *paymentService) Add(ctx context.Context, p *domain.Payment) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	// The project reference is taken as given. It may point at a
	// project that no longer exists; such payments still list and
	// still count toward overdue stats.
	p.ID = uuid.New().String()
	p.OwnerID = ownerID
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := s.payments.Create(ctx, p); err != nil {
		s.log.Error("payment: create failed", "error", err)
		return err
	}
	s.hub.Publish(live.KindPayments, ownerID)
	return nil
}

func (s *paymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *paymentService) List(ctx context.Context) ([]*domain.Payment, error) {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return nil, err
	}
	return s.payments.ListByOwner(ctx, ownerID)
}

func (s *paymentService) ListByProject(ctx context.Context, projectID string) ([]*domain.Payment, error) {
	return s.payments.ListByProject(ctx, projectID)
}

func (s *paymentService) Update(ctx context.Context, id string, patch domain.PaymentPatch) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	patch.UpdatedAt = time.Now().UTC()
	if err := s.payments.Update(ctx, id, patch); err != nil {
		s.log.Error("payment: update failed", "id", id, "error", err)
		return err
	}
	s.hub.Publish(live.KindPayments, ownerID)
	return nil
}

func (s *paymentService) Remove(ctx context.Context, id string) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	if err := s.payments.Delete(ctx, id); err != nil {
		s.log.Error("payment: delete failed", "id", id, "error", err)
		return err
	}
	s.hub.Publish(live.KindPayments, ownerID)
	return nil
}
