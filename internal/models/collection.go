package models

import "time"

// Collection is one substrate row: a collection name mapped to the whole
// collection serialized as a JSON document. Saves overwrite the document;
// there are no partial or append writes.
type Collection struct {
	Name      string `gorm:"primaryKey;size:255"`
	Data      JSON   `gorm:"type:json"`
	UpdatedAt time.Time
}

// Substrate keys. These names are the on-disk contract.
const (
	CollectionUsers       = "users"
	CollectionEvents      = "events"
	CollectionTickets     = "tickets"
	CollectionWithdrawals = "withdrawals"
	CollectionCurrentUser = "currentUser"
)

// TableName overrides the table name for Collection
func (Collection) TableName() string {
	return "collections"
}
