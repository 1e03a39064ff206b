package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CollectionEntry is one obtained copy of a card. The table is
// append-only; duplicate copies are separate rows and copy counts are
// derived by aggregation.
type CollectionEntry struct {
	bun.BaseModel `bun:"table:collection_entries,alias:ce"`

	ID       int64     `bun:"id,pk,autoincrement"`
	UserID   string    `bun:"user_id,notnull"`
	CardID   int64     `bun:"card_id,notnull"`
	Obtained time.Time `bun:"obtained,notnull"`
}
