package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mrlokans/passmanager/internal/database"
	"github.com/mrlokans/passmanager/internal/entities"
)

func TestEntryDocument_BSONFieldNames(t *testing.T) {
	doc := newEntryDocument(&entities.SecretEntry{
		EntryID: "e1", Site: "a.com", Username: "ann", Password: "p1", OwnerID: "owner",
	})

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	for _, key := range []string{"_id", "id", "site", "username", "password", "userId", "createdAt"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "owner", m["userId"])
}

func TestUserDocument_ToEntity(t *testing.T) {
	oid := primitive.NewObjectID()
	now := time.Now().UTC()

	user := userDocument{ID: oid, Name: "Ann", Email: "ann@x.com", PasswordHash: "hash", CreatedAt: now}.toEntity()

	assert.Equal(t, oid.Hex(), user.ID)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.Equal(t, "hash", user.PasswordHash)
}

// connectTestDB connects to MONGO_TEST_URI using a throwaway database.
func connectTestDB(t *testing.T) *Client {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := Connect(ctx, uri, "passmanager_test_"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx := context.Background()
		_ = client.db.Drop(ctx)
		_ = client.Close(ctx)
	})
	return client
}

func TestUserRepository_Integration(t *testing.T) {
	client := connectTestDB(t)
	repo := client.Users()
	ctx := context.Background()

	user := &entities.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.Len(t, user.ID, 24)

	err := repo.CreateUser(ctx, &entities.User{Name: "Ann 2", Email: "ann@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	found, err := repo.GetUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	byID, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", byID.Name)

	_, err = repo.GetUserByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestEntryRepository_Integration(t *testing.T) {
	client := connectTestDB(t)
	repo := client.Entries()
	ctx := context.Background()

	for _, e := range []*entities.SecretEntry{
		{OwnerID: "a", EntryID: "e1", Site: "a.com"},
		{OwnerID: "a", EntryID: "e2", Site: "b.com"},
		{OwnerID: "b", EntryID: "e1", Site: "c.com"},
	} {
		require.NoError(t, repo.CreateEntry(ctx, e))
		assert.NotEmpty(t, e.ID)
	}

	list, err := repo.ListEntries(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	n, err := repo.DeleteEntry(ctx, "a", "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteAllEntries(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	others, err := repo.ListEntries(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
