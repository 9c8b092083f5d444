package entries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/passmanager/internal/database"
	"github.com/mrlokans/passmanager/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	db, err := database.NewSilentDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB)
}

func seed(t *testing.T, repo *Repository, ownerID, entryID, site string) *entities.SecretEntry {
	t.Helper()
	entry := &entities.SecretEntry{OwnerID: ownerID, EntryID: entryID, Site: site, Username: "u", Password: "p"}
	require.NoError(t, repo.CreateEntry(context.Background(), entry))
	return entry
}

func TestRepository_CreateEntry(t *testing.T) {
	repo := setupTestDB(t)

	entry := seed(t, repo, "owner-a", "e1", "a.com")

	assert.Len(t, entry.ID, 36)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestRepository_CreateEntry_RequiresOwner(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.CreateEntry(context.Background(), &entities.SecretEntry{Site: "a.com"})
	assert.Error(t, err)
}

func TestRepository_ListEntries_ScopedByOwner(t *testing.T) {
	repo := setupTestDB(t)
	seed(t, repo, "owner-a", "e1", "a.com")
	seed(t, repo, "owner-a", "e2", "b.com")
	seed(t, repo, "owner-b", "e3", "c.com")

	list, err := repo.ListEntries(context.Background(), "owner-a")
	require.NoError(t, err)

	sites := make([]string, 0, len(list))
	for _, e := range list {
		assert.Equal(t, "owner-a", e.OwnerID)
		sites = append(sites, e.Site)
	}
	assert.ElementsMatch(t, []string{"a.com", "b.com"}, sites)

	empty, err := repo.ListEntries(context.Background(), "owner-c")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_DeleteEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	seed(t, repo, "owner-a", "shared-id", "a.com")
	seed(t, repo, "owner-b", "shared-id", "b.com")

	t.Run("other owner's entry is untouched", func(t *testing.T) {
		n, err := repo.DeleteEntry(ctx, "owner-c", "shared-id")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("deletes only the caller's entry", func(t *testing.T) {
		n, err := repo.DeleteEntry(ctx, "owner-a", "shared-id")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		remaining, err := repo.ListEntries(ctx, "owner-b")
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})
}

func TestRepository_DeleteEntry_DuplicateClientID(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	older := time.Now().Add(-time.Minute)
	first := &entities.SecretEntry{OwnerID: "owner-a", EntryID: "dup", Site: "a.com", CreatedAt: older}
	second := &entities.SecretEntry{OwnerID: "owner-a", EntryID: "dup", Site: "b.com", CreatedAt: older.Add(time.Second)}
	require.NoError(t, repo.CreateEntry(ctx, first))
	require.NoError(t, repo.CreateEntry(ctx, second))

	n, err := repo.DeleteEntry(ctx, "owner-a", "dup")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	remaining, err := repo.ListEntries(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
	assert.NotEqual(t, first.ID, remaining[0].ID)

	n, err = repo.DeleteEntry(ctx, "owner-a", "dup")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteEntry(ctx, "owner-a", "dup")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_DeleteAllEntries(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	seed(t, repo, "owner-a", "e1", "a.com")
	seed(t, repo, "owner-a", "e2", "b.com")
	seed(t, repo, "owner-b", "e3", "c.com")

	n, err := repo.DeleteAllEntries(ctx, "owner-a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := repo.ListEntries(ctx, "owner-a")
	require.NoError(t, err)
	assert.Empty(t, list)

	others, err := repo.ListEntries(ctx, "owner-b")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
