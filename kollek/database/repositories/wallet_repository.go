package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/kollekbot/kollek/kollek/database/models"
)

type WalletRepository interface {
	// GetBalance returns the user's koin balance, 0 for users without a
	// wallet row yet.
	GetBalance(ctx context.Context, userID string) (int64, error)
}

type walletRepository struct {
	db *bun.DB
}

func NewWalletRepository(db *bun.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var wallet models.Wallet
	err := r.db.NewSelect().
		Model(&wallet).
		Column("balance").
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return wallet.Balance, nil
}
