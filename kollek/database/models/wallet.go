package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Wallet is one user's koin balance. Balances only change through the
// draw transaction paths and never go negative.
type Wallet struct {
	bun.BaseModel `bun:"table:wallets,alias:w"`

	UserID    string    `bun:"user_id,pk"`
	Balance   int64     `bun:"balance,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
