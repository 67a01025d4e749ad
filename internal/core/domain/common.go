package domain

import "time"

// RecordMeta holds the store-assigned identity of a persisted record.
// ID is empty until the record has been inserted; CreatedAt is stamped
// by the document store at insertion time.
type RecordMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
