package model

import "time"

// Metadata is embedded by every persisted entity. The database fills both
// columns, so inserts leave them out.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  insert:"-" json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" insert:"-" json:"modified_at"`
}
