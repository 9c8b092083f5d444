package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrlokans/passmanager/internal/entities"
)

type entryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	EntryID   string             `bson:"id"`
	Site      string             `bson:"site"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	OwnerID   string             `bson:"userId"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func newEntryDocument(e *entities.SecretEntry) entryDocument {
	return entryDocument{
		ID:        primitive.NewObjectID(),
		EntryID:   e.EntryID,
		Site:      e.Site,
		Username:  e.Username,
		Password:  e.Password,
		OwnerID:   e.OwnerID,
		CreatedAt: e.CreatedAt,
	}
}

func (d entryDocument) toEntity() entities.SecretEntry {
	return entities.SecretEntry{
		ID:        d.ID.Hex(),
		EntryID:   d.EntryID,
		OwnerID:   d.OwnerID,
		Site:      d.Site,
		Username:  d.Username,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
	}
}

// EntryRepository implements vault.Store on the documents collection.
type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(EntriesCollection)}
}

func (r *EntryRepository) ListEntries(ctx context.Context, ownerID string) ([]entities.SecretEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": ownerID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	var docs []entryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}

	result := make([]entities.SecretEntry, 0, len(docs))
	for _, doc := range docs {
		result = append(result, doc.toEntity())
	}
	return result, nil
}

func (r *EntryRepository) CreateEntry(ctx context.Context, entry *entities.SecretEntry) error {
	if entry.OwnerID == "" {
		return fmt.Errorf("create entry: owner id is empty")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	doc := newEntryDocument(entry)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	entry.ID = doc.ID.Hex()
	return nil
}

func (r *EntryRepository) DeleteEntry(ctx context.Context, ownerID, entryID string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": entryID, "userId": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete entry: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *EntryRepository) DeleteAllEntries(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"userId": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}
	return res.DeletedCount, nil
}
