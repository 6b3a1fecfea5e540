// Package live keeps in-memory snapshots of a user's records in step
// with the store. Writers announce changes through the Hub; the Mirror
// reloads the affected collection and republishes a consistent
// snapshot to its observers. Readers never see a write before the
// store has accepted it.
package live

import "sync"

// Kind names one watched collection.
type Kind string

const (
	KindProjects Kind = "projects"
	KindClients  Kind = "clients"
	KindPayments Kind = "payments"
)

type subscriber struct {
	kind  Kind
	owner string
	fn    func()
}

// Hub fans change announcements out to subscribers, keyed by
// collection kind and owner. Callbacks run synchronously on the
// publishing goroutine, outside the hub lock.
type Hub struct {
	mu   sync.Mutex
	subs map[int]*subscriber
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscriber)}
}

// Subscribe registers fn for changes to the given collection of the
// given owner. The returned cancel is idempotent; after it returns, fn
// is never invoked again.
func (h *Hub) Subscribe(kind Kind, ownerID string, fn func()) (cancel func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = &subscriber{kind: kind, owner: ownerID, fn: fn}
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Publish announces that the given owner's collection changed.
func (h *Hub) Publish(kind Kind, ownerID string) {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, s := range h.subs {
		if s.kind == kind && s.owner == ownerID {
			fns = append(fns, s.fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
