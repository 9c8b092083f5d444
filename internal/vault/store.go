// Package vault scopes secret entry storage to a single owner.
//
// Store is the raw persistence contract and takes the owner explicitly.
// Handlers never call it directly; they wrap it with ForOwner so that every
// read, write and delete is conjoined with "owner = current identity".
//
//	entries, err := vault.ForOwner(store, identity.UserID)
//	list, err := entries.List(ctx)
package vault

import (
	"context"
	"errors"

	"github.com/mrlokans/passmanager/internal/entities"
)

var ErrNoOwner = errors.New("owner id is required")

// Store persists secret entries. Every method filters by ownerID.
type Store interface {
	ListEntries(ctx context.Context, ownerID string) ([]entities.SecretEntry, error)
	CreateEntry(ctx context.Context, entry *entities.SecretEntry) error
	DeleteEntry(ctx context.Context, ownerID, entryID string) (int64, error)
	DeleteAllEntries(ctx context.Context, ownerID string) (int64, error)
}

// OwnerStore is a Store view bound to one owner.
type OwnerStore struct {
	store   Store
	ownerID string
}

// ForOwner binds store to ownerID. An empty ownerID is rejected so that a
// missing identity can never turn into an unfiltered query.
func ForOwner(store Store, ownerID string) (*OwnerStore, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	return &OwnerStore{store: store, ownerID: ownerID}, nil
}

func (o *OwnerStore) OwnerID() string {
	return o.ownerID
}

// List returns the owner's entries, never nil.
func (o *OwnerStore) List(ctx context.Context) ([]entities.SecretEntry, error) {
	entries, err := o.store.ListEntries(ctx, o.ownerID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entities.SecretEntry{}
	}
	return entries, nil
}

// Create stores entry under the bound owner, overwriting any owner the caller set.
func (o *OwnerStore) Create(ctx context.Context, entry *entities.SecretEntry) error {
	entry.OwnerID = o.ownerID
	return o.store.CreateEntry(ctx, entry)
}

// Delete removes the owner's entry with the given client entry id.
func (o *OwnerStore) Delete(ctx context.Context, entryID string) (int64, error) {
	return o.store.DeleteEntry(ctx, o.ownerID, entryID)
}

// DeleteAll removes every entry of the owner.
func (o *OwnerStore) DeleteAll(ctx context.Context) (int64, error) {
	return o.store.DeleteAllEntries(ctx, o.ownerID)
}
