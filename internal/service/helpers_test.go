package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alexanderramin/lancer/internal/auth"
	"github.com/alexanderramin/lancer/internal/live"
	"github.com/alexanderramin/lancer/internal/repository"
	"github.com/alexanderramin/lancer/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires the services the way main does, against an in-memory
// store, with hub publish counters per collection.
type testEnv struct {
	session  *auth.Session
	hub      *live.Hub
	auth     *auth.Service
	projects ProjectService
	clients  ClientService
	payments PaymentService

	projectRepo repository.ProjectRepo
	paymentRepo repository.PaymentRepo

	published map[live.Kind]int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		session:   auth.NewSession(),
		hub:       live.NewHub(),
		published: make(map[live.Kind]int),
	}
	env.auth = auth.NewService(
		repository.NewSQLiteAccountRepo(database),
		repository.NewSQLiteAuthSessionRepo(database),
		&auth.MemoryTokenStore{},
		env.session,
		log,
	)

	env.projectRepo = repository.NewSQLiteProjectRepo(database)
	clientRepo := repository.NewSQLiteClientRepo(database)
	env.paymentRepo = repository.NewSQLitePaymentRepo(database)

	env.projects = NewProjectService(env.projectRepo, env.session, env.hub, log)
	env.clients = NewClientService(clientRepo, env.session, env.hub, log)
	env.payments = NewPaymentService(env.paymentRepo, env.session, env.hub, log)

	return env
}

// signIn creates an account and counts subsequent hub publishes for
// the signed-in owner.
func (env *testEnv) signIn(t *testing.T) string {
	t.Helper()
	require.NoError(t, env.auth.Signup(context.Background(), "Jo", "jo@example.com", "hunter22"))
	identity := env.session.CurrentIdentity()
	require.NotNil(t, identity)

	for _, kind := range []live.Kind{live.KindProjects, live.KindClients, live.KindPayments} {
		kind := kind
		env.hub.Subscribe(kind, identity.ID, func() { env.published[kind]++ })
	}
	return identity.ID
}
