package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/kollekbot/kollek/kollek/database/models"
)

type CooldownRepository interface {
	// GetLastAction returns the recorded clock for (user, action); the
	// zero time means the action was never performed.
	GetLastAction(ctx context.Context, userID string, action string) (time.Time, error)
}

type cooldownRepository struct {
	db *bun.DB
}

func NewCooldownRepository(db *bun.DB) CooldownRepository {
	return &cooldownRepository{db: db}
}

func (r *cooldownRepository) GetLastAction(ctx context.Context, userID string, action string) (time.Time, error) {
	var cd models.Cooldown
	err := r.db.NewSelect().
		Model(&cd).
		Where("user_id = ? AND action = ?", userID, action).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get last action: %w", err)
	}
	return cd.LastAction, nil
}
