package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/repository"
	"github.com/alexanderramin/lancer/internal/stats"
)

// Snapshot is one consistent view of the signed-in user's records.
// Lists arrive newest-first; Stats is recomputed whenever any list
// changes, so the two never disagree within a snapshot.
type Snapshot struct {
	Projects []*domain.Project
	Clients  []*domain.Client
	Payments []*domain.Payment
	Stats    stats.DashboardStats
	Ready    bool
}

// Observer receives each new snapshot. Observers run synchronously on
// the goroutine that triggered the change.
type Observer func(Snapshot)

// Mirror watches the signed-in owner's collections. Each hub
// announcement replaces the affected list wholesale with a fresh read
// from the store; there are no incremental or optimistic edits, so a
// record disappears from the snapshot only once the store confirms the
// delete.
type Mirror struct {
	projects repository.ProjectRepo
	clients  repository.ClientRepo
	payments repository.PaymentRepo
	hub      *Hub
	log      *slog.Logger

	mu        sync.Mutex
	owner     string
	cancels   []func()
	snap      Snapshot
	observers map[int]Observer
	nextObs   int
}

func NewMirror(projects repository.ProjectRepo, clients repository.ClientRepo, payments repository.PaymentRepo, hub *Hub, log *slog.Logger) *Mirror {
	return &Mirror{
		projects:  projects,
		clients:   clients,
		payments:  payments,
		hub:       hub,
		log:       log,
		observers: make(map[int]Observer),
	}
}

// Start points the mirror at an owner: it subscribes to that owner's
// collections and loads the initial snapshot. Any previous owner's
// subscriptions are torn down first, so switching accounts never mixes
// records.
func (m *Mirror) Start(ctx context.Context, ownerID string) {
	m.mu.Lock()
	m.teardownLocked()
	m.owner = ownerID

	for _, kind := range []Kind{KindProjects, KindClients, KindPayments} {
		kind := kind
		cancel := m.hub.Subscribe(kind, ownerID, func() {
			m.reload(ctx, ownerID, kind)
		})
		m.cancels = append(m.cancels, cancel)
	}
	m.mu.Unlock()

	for _, kind := range []Kind{KindProjects, KindClients, KindPayments} {
		m.reload(ctx, ownerID, kind)
	}
}

// Stop tears down the subscriptions and clears the snapshot. Called on
// sign-out; safe to call when already stopped.
func (m *Mirror) Stop() {
	m.mu.Lock()
	m.teardownLocked()
	m.owner = ""
	m.snap = Snapshot{}
	m.mu.Unlock()

	m.notify()
}

func (m *Mirror) teardownLocked() {
	for _, cancel := range m.cancels {
		cancel()
	}
	m.cancels = nil
}

// reload replaces one collection from the store and recomputes stats.
// A reload racing a teardown or account switch is dropped.
func (m *Mirror) reload(ctx context.Context, ownerID string, kind Kind) {
	m.mu.Lock()
	if m.owner != ownerID {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	var err error
	var projects []*domain.Project
	var clients []*domain.Client
	var payments []*domain.Payment

	switch kind {
	case KindProjects:
		projects, err = m.projects.ListByOwner(ctx, ownerID)
	case KindClients:
		clients, err = m.clients.ListByOwner(ctx, ownerID)
	case KindPayments:
		payments, err = m.payments.ListByOwner(ctx, ownerID)
	}
	if err != nil {
		m.log.Error("mirror: reloading collection", "kind", kind, "error", err)
		return
	}

	m.mu.Lock()
	if m.owner != ownerID {
		// The account changed while we were reading; this snapshot
		// belongs to the old owner.
		m.mu.Unlock()
		return
	}
	switch kind {
	case KindProjects:
		m.snap.Projects = projects
	case KindClients:
		m.snap.Clients = clients
	case KindPayments:
		m.snap.Payments = payments
	}
	m.snap.Ready = true
	m.snap.Stats = stats.Compute(m.snap.Projects, m.snap.Clients, m.snap.Payments, time.Now().UTC())
	m.mu.Unlock()

	m.notify()
}

// Snapshot returns the current view. The slices are copies; the
// records they point to are shared and must be treated as read-only.
func (m *Mirror) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyLocked()
}

func (m *Mirror) copyLocked() Snapshot {
	out := m.snap
	out.Projects = append([]*domain.Project(nil), m.snap.Projects...)
	out.Clients = append([]*domain.Client(nil), m.snap.Clients...)
	out.Payments = append([]*domain.Payment(nil), m.snap.Payments...)
	return out
}

// Subscribe registers an observer for snapshot changes and returns an
// idempotent cancel.
func (m *Mirror) Subscribe(obs Observer) (cancel func()) {
	m.mu.Lock()
	id := m.nextObs
	m.nextObs++
	m.observers[id] = obs
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.observers, id)
		m.mu.Unlock()
	}
}

func (m *Mirror) notify() {
	m.mu.Lock()
	snap := m.copyLocked()
	obs := make([]Observer, 0, len(m.observers))
	for _, o := range m.observers {
		obs = append(obs, o)
	}
	m.mu.Unlock()

	for _, o := range obs {
		o(snap)
	}
}
