package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/lancer/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(email string) *Account {
	return &Account{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  "Jo Freelance",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
	}
}

func TestSQLiteAccountRepo_CreateAndGetByEmail(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(database)
	ctx := context.Background()

	a := newAccount("Jo@Example.com")
	require.NoError(t, repo.Create(ctx, a))

	// Lookup is case-insensitive because emails are stored lowercased.
	fetched, err := repo.GetByEmail(ctx, "jo@example.COM")
	require.NoError(t, err)
	assert.Equal(t, a.ID, fetched.ID)
	assert.Equal(t, "jo@example.com", fetched.Email)
	assert.Equal(t, "Jo Freelance", fetched.DisplayName)
}

func TestSQLiteAccountRepo_DuplicateEmail(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAccount("jo@example.com")))
	err := repo.Create(ctx, newAccount("jo@example.com"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSQLiteAccountRepo_UpdateDisplayName(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(database)
	ctx := context.Background()

	a := newAccount("jo@example.com")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.UpdateDisplayName(ctx, a.ID, "Joanna F."))

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Joanna F.", fetched.DisplayName)

	assert.ErrorIs(t, repo.UpdateDisplayName(ctx, "missing", "X"), ErrNotFound)
}

func TestSQLiteAuthSessionRepo_Lifecycle(t *testing.T) {
	database := testutil.NewTestDB(t)
	accounts := NewSQLiteAccountRepo(database)
	sessions := NewSQLiteAuthSessionRepo(database)
	ctx := context.Background()

	a := newAccount("jo@example.com")
	require.NoError(t, accounts.Create(ctx, a))
	require.NoError(t, sessions.Create(ctx, "tok-1", a.ID))

	accountID, err := sessions.Resolve(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, accountID)

	require.NoError(t, sessions.Delete(ctx, "tok-1"))
	_, err = sessions.Resolve(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
