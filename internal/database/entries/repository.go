// Package entries provides database operations for secret entries.
//
// Every query filters by owner_id; callers go through vault.ForOwner.
package entries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/passmanager/internal/entities"
)

// Repository handles secret entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new entries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListEntries returns the owner's entries, oldest first.
func (r *Repository) ListEntries(ctx context.Context, ownerID string) ([]entities.SecretEntry, error) {
	var entries []entities.SecretEntry
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// CreateEntry inserts the entry and assigns its store ID.
func (r *Repository) CreateEntry(ctx context.Context, entry *entities.SecretEntry) error {
	if entry.OwnerID == "" {
		return fmt.Errorf("create entry: owner id is empty")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// DeleteEntry removes the owner's oldest entry with the given client entry id.
// Client ids are not unique, so at most one row is removed per call.
func (r *Repository) DeleteEntry(ctx context.Context, ownerID, entryID string) (int64, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entities.SecretEntry{}).
		Where("owner_id = ? AND entry_id = ?", ownerID, entryID).
		Order("created_at ASC").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("failed to find entry: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", ids[0], ownerID).
		Delete(&entities.SecretEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteAllEntries removes every entry of the owner.
func (r *Repository) DeleteAllEntries(ctx context.Context, ownerID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&entities.SecretEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
