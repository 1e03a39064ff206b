package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Cooldown records the last time a user performed a gated action. One
// row per (user, action); a missing row means the action was never
// performed.
type Cooldown struct {
	bun.BaseModel `bun:"table:cooldowns,alias:cd"`

	UserID     string    `bun:"user_id,pk"`
	Action     string    `bun:"action,pk"`
	LastAction time.Time `bun:"last_action,notnull"`
}
