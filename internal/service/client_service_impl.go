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

type clientService struct {
	clients repository.ClientRepo
	session *auth.Session
	hub     *live.Hub
	log     *slog.Logger
}

func NewClientService(clients repository.ClientRepo, session *auth.Session, hub *live.Hub, log *slog.Logger) ClientService {
	return &clientService{clients: clients, session: session, hub: hub, log: log}
}

func (s *clientService) Add(ctx context.Context, c *domain.Client) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.OwnerID = ownerID
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := c.Validate(); err != nil {
		return err
	}

	if err := s.clients.Create(ctx, c); err != nil {
		s.log.Error("client: create failed", "error", err)
		return err
	}
	s.hub.Publish(live.KindClients, ownerID)
	return nil
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return nil, err
	}
	return s.clients.ListByOwner(ctx, ownerID)
}

func (s *clientService) Update(ctx context.Context, id string, patch domain.ClientPatch) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	patch.UpdatedAt = time.Now().UTC()
	if err := s.clients.Update(ctx, id, patch); err != nil {
		s.log.Error("client: update failed", "id", id, "error", err)
		return err
	}
	s.hub.Publish(live.KindClients, ownerID)
	return nil
}

func (s *clientService) Remove(ctx context.Context, id string) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		s.log.Error("client: delete failed", "id", id, "error", err)
		return err
	}
	s.hub.Publish(live.KindClients, ownerID)
	return nil
}
