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

type projectService struct {
	projects repository.ProjectRepo
	session  *auth.Session
	hub      *live.Hub
	log      *slog.Logger
}

func NewProjectService(projects repository.ProjectRepo, session *auth.Session, hub *live.Hub, log *slog.Logger) ProjectService {
	return &projectService{projects: projects, session: session, hub: hub, log: log}
}

func (s *projectService) Add(ctx context.Context, p *domain.Project) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	p.ID = uuid.New().String()
	p.OwnerID = ownerID
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectOngoing
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := s.projects.Create(ctx, p); err != nil {
		s.log.Error("project: create failed", "error", err)
		return err
	}
	s.hub.Publish(live.KindProjects, ownerID)
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return nil, err
	}
	return s.projects.ListByOwner(ctx, ownerID)
}

func (s *projectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	// Only the submitted fields travel; UpdatedAt is stamped here,
	// CreatedAt is never touched on update.
	patch.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, id, patch); err != nil {
		s.log.Error("project: update failed", "id", id, "error", err)
		return err
	}
	s.hub.Publish(live.KindProjects, ownerID)
	return nil
}

func (s *projectService) Remove(ctx context.Context, id string) error {
	ownerID, err := requireOwner(s.session)
	if err != nil {
		return err
	}

	// Deletes do not cascade: payments pointing at this project stay
	// behind and keep counting toward payment stats.
	if err := s.projects.Delete(ctx, id); err != nil {
		s.log.Error("project: delete failed", "id", id, "error", err)
		return err
	}
	s.hub.Publish(live.KindProjects, ownerID)
	return nil
}
