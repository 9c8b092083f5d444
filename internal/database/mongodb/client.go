// Package mongodb stores users and secret entries in MongoDB.
//
// Collections and field names match the layout the service has always used
// ("users" with a unique email index, "documents" keyed by userId), so existing
// databases can be served without migration.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection   = "users"
	EntriesCollection = "documents"
)

// Client owns the MongoDB connection and hands out repositories.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, verifies the connection and ensures indexes on dbName.
func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	c := &Client{client: client, db: client.Database(dbName)}
	if err := c.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return c, nil
}

// EnsureIndexes creates the unique email index and the owner lookup index.
// Creating an index that already exists is a no-op.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users.email index: %w", err)
	}

	_, err = c.db.Collection(EntriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "id", Value: 1}},
		Options: options.Index().SetName("owner_entry"),
	})
	if err != nil {
		return fmt.Errorf("failed to create documents owner index: %w", err)
	}
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *Client) Users() *UserRepository {
	return NewUserRepository(c.db)
}

func (c *Client) Entries() *EntryRepository {
	return NewEntryRepository(c.db)
}
