package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/kollekbot/kollek/kollek/database/models"
)

// OwnedCard is one distinct card in a user's collection with its copy
// count, aggregated from the append-only entry table.
type OwnedCard struct {
	CardID        int64     `bun:"card_id"`
	Copies        int       `bun:"copies"`
	FirstObtained time.Time `bun:"first_obtained"`
}

type CollectionRepository interface {
	// ListOwned returns the distinct cards a user owns with copy counts,
	// ordered by card id.
	ListOwned(ctx context.Context, userID string) ([]OwnedCard, error)
	// CountCopies returns how many copies of one card the user holds.
	CountCopies(ctx context.Context, userID string, cardID int64) (int, error)
}

type collectionRepository struct {
	db *bun.DB
}

func NewCollectionRepository(db *bun.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) ListOwned(ctx context.Context, userID string) ([]OwnedCard, error) {
	var owned []OwnedCard
	err := r.db.NewSelect().
		Model((*models.CollectionEntry)(nil)).
		ColumnExpr("card_id").
		ColumnExpr("count(*) AS copies").
		ColumnExpr("min(obtained) AS first_obtained").
		Where("user_id = ?", userID).
		Group("card_id").
		Order("card_id ASC").
		Scan(ctx, &owned)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}
	return owned, nil
}

func (r *collectionRepository) CountCopies(ctx context.Context, userID string, cardID int64) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.CollectionEntry)(nil)).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count copies: %w", err)
	}
	return count, nil
}
