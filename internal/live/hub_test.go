package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishReachesMatchingSubscribers(t *testing.T) {
	h := NewHub()

	var mine, otherKind, otherOwner int
	h.Subscribe(KindProjects, "owner-1", func() { mine++ })
	h.Subscribe(KindClients, "owner-1", func() { otherKind++ })
	h.Subscribe(KindProjects, "owner-2", func() { otherOwner++ })

	h.Publish(KindProjects, "owner-1")
	h.Publish(KindProjects, "owner-1")

	assert.Equal(t, 2, mine)
	assert.Zero(t, otherKind)
	assert.Zero(t, otherOwner)
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	h := NewHub()

	calls := 0
	cancel := h.Subscribe(KindPayments, "owner-1", func() { calls++ })

	h.Publish(KindPayments, "owner-1")
	cancel()
	cancel() // idempotent
	h.Publish(KindPayments, "owner-1")

	assert.Equal(t, 1, calls)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	h := NewHub()
	assert.NotPanics(t, func() { h.Publish(KindClients, "owner-1") })
}
