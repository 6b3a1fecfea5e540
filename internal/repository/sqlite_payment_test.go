package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLitePaymentRepo_Roundtrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePaymentRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPayment("proj-1", 450)
	require.NoError(t, repo.Create(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "proj-1", fetched.ProjectID)
	assert.Equal(t, 450.0, fetched.Amount)
	assert.Equal(t, domain.PaymentPending, fetched.Status)
	assert.Nil(t, fetched.PaidDate)
}

func TestSQLitePaymentRepo_ListByProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePaymentRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPayment("proj-1", 100)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPayment("proj-1", 200)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPayment("proj-2", 300)))

	payments, err := repo.ListByProject(ctx, "proj-1")
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestSQLitePaymentRepo_Update_MarkPaid(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePaymentRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPayment("proj-1", 450)
	require.NoError(t, repo.Create(ctx, p))

	paid := domain.PaymentPaid
	paidDate := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	patch := domain.PaymentPatch{
		Status:    &paid,
		PaidDate:  &paidDate,
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Update(ctx, p.ID, patch))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, fetched.Status)
	require.NotNil(t, fetched.PaidDate)
	assert.Equal(t, paidDate, *fetched.PaidDate)
	assert.Equal(t, 450.0, fetched.Amount, "amount untouched by the patch")
}

func TestSQLitePaymentRepo_DanglingProjectReferenceAllowed(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePaymentRepo(database)
	ctx := context.Background()

	// No projects row exists for this id; the store accepts the payment anyway.
	p := testutil.NewTestPayment("no-such-project", 75)
	require.NoError(t, repo.Create(ctx, p))

	payments, err := repo.ListByOwner(ctx, testutil.TestOwnerID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}
