package auth

import (
	"testing"

	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSession_ResolvingUntilFirstEvent(t *testing.T) {
	s := NewSession()

	assert.True(t, s.IsResolving(), "unknown state before the first event")
	assert.Nil(t, s.CurrentIdentity())

	s.set(nil)
	assert.False(t, s.IsResolving(), "a nil event still resolves the session")
	assert.Nil(t, s.CurrentIdentity())
}

func TestSession_SubscribeAndCancel(t *testing.T) {
	s := NewSession()

	var events []*domain.Identity
	cancel := s.Subscribe(func(id *domain.Identity) {
		events = append(events, id)
	})

	s.set(&domain.Identity{ID: "u1"})
	s.set(nil)
	assert.Len(t, events, 2)
	assert.Equal(t, "u1", events[0].ID)
	assert.Nil(t, events[1])

	cancel()
	s.set(&domain.Identity{ID: "u2"})
	assert.Len(t, events, 2, "canceled listener must not fire")

	// Double-cancel is harmless.
	cancel()
}

func TestSession_CloseDiscardsEvents(t *testing.T) {
	s := NewSession()

	fired := false
	s.Subscribe(func(*domain.Identity) { fired = true })
	s.Close()

	s.set(&domain.Identity{ID: "u1"})
	assert.False(t, fired)
	assert.Nil(t, s.CurrentIdentity(), "events after Close are discarded")
}
