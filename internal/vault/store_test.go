package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/passmanager/internal/entities"
)

// recordingStore captures the owner passed to every call.
type recordingStore struct {
	owners  []string
	created []entities.SecretEntry
	list    []entities.SecretEntry
}

func (s *recordingStore) ListEntries(_ context.Context, ownerID string) ([]entities.SecretEntry, error) {
	s.owners = append(s.owners, ownerID)
	return s.list, nil
}

func (s *recordingStore) CreateEntry(_ context.Context, entry *entities.SecretEntry) error {
	s.owners = append(s.owners, entry.OwnerID)
	s.created = append(s.created, *entry)
	return nil
}

func (s *recordingStore) DeleteEntry(_ context.Context, ownerID, _ string) (int64, error) {
	s.owners = append(s.owners, ownerID)
	return 1, nil
}

func (s *recordingStore) DeleteAllEntries(_ context.Context, ownerID string) (int64, error) {
	s.owners = append(s.owners, ownerID)
	return 3, nil
}

func TestForOwner_RejectsEmptyOwner(t *testing.T) {
	_, err := ForOwner(&recordingStore{}, "")
	assert.ErrorIs(t, err, ErrNoOwner)
}

func TestOwnerStore_EveryCallIsScoped(t *testing.T) {
	store := &recordingStore{}
	scoped, err := ForOwner(store, "user-a")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = scoped.List(ctx)
	require.NoError(t, err)
	require.NoError(t, scoped.Create(ctx, &entities.SecretEntry{Site: "a.com"}))
	_, err = scoped.Delete(ctx, "entry-1")
	require.NoError(t, err)
	deleted, err := scoped.DeleteAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), deleted)
	assert.Equal(t, []string{"user-a", "user-a", "user-a", "user-a"}, store.owners)
}

func TestOwnerStore_CreateOverridesForeignOwner(t *testing.T) {
	store := &recordingStore{}
	scoped, err := ForOwner(store, "user-a")
	require.NoError(t, err)

	entry := &entities.SecretEntry{Site: "a.com", OwnerID: "user-b"}
	require.NoError(t, scoped.Create(context.Background(), entry))

	assert.Equal(t, "user-a", entry.OwnerID)
	require.Len(t, store.created, 1)
	assert.Equal(t, "user-a", store.created[0].OwnerID)
}

func TestOwnerStore_ListNeverNil(t *testing.T) {
	scoped, err := ForOwner(&recordingStore{}, "user-a")
	require.NoError(t, err)

	entries, err := scoped.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
