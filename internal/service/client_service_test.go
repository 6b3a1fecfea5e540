package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/lancer/internal/auth"
	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientService_AddRequiresSignIn(t *testing.T) {
	env := newTestEnv(t)

	err := env.clients.Add(context.Background(), &domain.Client{Name: "Acme"})
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestClientService_AddListUpdateRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ownerID := env.signIn(t)

	c := &domain.Client{Name: "Acme", Email: "billing@acme.test", Country: "DE"}
	require.NoError(t, env.clients.Add(ctx, c))
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, ownerID, c.OwnerID)
	assert.Equal(t, 1, env.published[live.KindClients])

	list, err := env.clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	email := "invoices@acme.test"
	require.NoError(t, env.clients.Update(ctx, c.ID, domain.ClientPatch{Email: &email}))
	got, err := env.clients.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "invoices@acme.test", got.Email)
	assert.Equal(t, "Acme", got.Name)

	require.NoError(t, env.clients.Remove(ctx, c.ID))
	list, err = env.clients.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 3, env.published[live.KindClients])
}

func TestClientService_AddWithoutName(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	err := env.clients.Add(context.Background(), &domain.Client{Email: "x@y.test"})
	assert.Error(t, err)
	assert.Zero(t, env.published[live.KindClients])
}
