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

func TestSQLiteProjectRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Portfolio site")
	p.Description = "Static site, three pages"
	require.NoError(t, repo.Create(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio site", fetched.Title)
	assert.Equal(t, "Acme Co", fetched.Client)
	assert.Equal(t, domain.ProjectOngoing, fetched.Status)
	assert.Equal(t, 1000.0, fetched.Payment)
	assert.Equal(t, testutil.TestOwnerID, fetched.OwnerID)
	assert.Equal(t, "Static site, three pages", fetched.Description)
}

func TestSQLiteProjectRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteProjectRepo_ListByOwner_ScopedAndNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	older := testutil.NewTestProject("Older")
	older.CreatedAt = base
	newer := testutil.NewTestProject("Newer")
	newer.CreatedAt = base.Add(time.Hour)
	foreign := testutil.NewTestProject("Someone else's")
	foreign.OwnerID = "owner-2"

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, foreign))

	projects, err := repo.ListByOwner(ctx, testutil.TestOwnerID)
	require.NoError(t, err)
	require.Len(t, projects, 2, "other owners' projects must not leak in")
	assert.Equal(t, "Newer", projects[0].Title)
	assert.Equal(t, "Older", projects[1].Title)
}

func TestSQLiteProjectRepo_Update_PartialFieldsOnly(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Branding")
	require.NoError(t, repo.Create(ctx, p))

	newTitle := "Branding v2"
	completed := domain.ProjectCompleted
	patch := domain.ProjectPatch{
		Title:     &newTitle,
		Status:    &completed,
		UpdatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Update(ctx, p.ID, patch))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Branding v2", fetched.Title)
	assert.Equal(t, domain.ProjectCompleted, fetched.Status)
	assert.Equal(t, 1000.0, fetched.Payment, "unpatched fields stay untouched")
	assert.Equal(t, "Acme Co", fetched.Client)
	assert.Equal(t, patch.UpdatedAt, fetched.UpdatedAt)
}

func TestSQLiteProjectRepo_Update_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)

	err := repo.Update(context.Background(), "missing", domain.ProjectPatch{UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteProjectRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Throwaway")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an already-missing id is not an error.
	assert.NoError(t, repo.Delete(ctx, p.ID))
}
