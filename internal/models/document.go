package models

import (
	"encoding/json"
	"time"
)

// Collection names the set of records of one entity type in the
// document store.
type Collection string

const (
	CollectionAccount     Collection = "account"
	CollectionCategory    Collection = "category"
	CollectionTransaction Collection = "transaction"
	CollectionBudget      Collection = "budget"
)

// Document is a raw stored record: the store-assigned identifier, the
// creation timestamp stamped at insert, and the entity payload. The
// payload never travels past the typed repositories in this form.
type Document struct {
	DocID      string          `db:"doc_id"`
	Collection Collection      `db:"collection"`
	Payload    json.RawMessage `db:"payload"`
	CreatedAt  time.Time       `db:"created_at"`
}
