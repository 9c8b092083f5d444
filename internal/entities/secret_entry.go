package entities

import "time"

// SecretEntry is a site/username/password triple owned by exactly one user.
//
// ID is assigned by the store and returned to clients as insertedId.
// EntryID is generated by the client and is what delete-by-id matches on.
// Password is stored as submitted.
type SecretEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	EntryID   string    `gorm:"index:idx_secret_entries_owner_entry,priority:2;size:64" json:"id"`
	OwnerID   string    `gorm:"index:idx_secret_entries_owner_entry,priority:1;size:36;not null" json:"userId"`
	Site      string    `gorm:"size:2048" json:"site"`
	Username  string    `gorm:"size:512" json:"username"`
	Password  string    `gorm:"size:1024" json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SecretEntry) TableName() string {
	return "secret_entries"
}
