package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/kollekbot/kollek/kollek/database/models"
	"github.com/kollekbot/kollek/kollek/gacha"
)

const defaultTxTimeout = 10 * time.Second

// GachaStore backs the draw engine with Postgres. All mutations run
// inside one transaction per engine operation; the debit path
// additionally locks the wallet row and re-checks the balance in the
// UPDATE predicate, so a refused debit can never be committed even if
// a second process bypasses the engine's per-user lock.
type GachaStore struct {
	db *bun.DB
}

func NewGachaStore(db *DB) *GachaStore {
	return &GachaStore{db: db.BunDB()}
}

func (s *GachaStore) LastAction(ctx context.Context, userID string, kind gacha.ActionKind) (time.Time, error) {
	var cd models.Cooldown
	err := s.db.NewSelect().
		Model(&cd).
		Where("user_id = ? AND action = ?", userID, string(kind)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get last %s: %w", kind, err)
	}
	return cd.LastAction, nil
}

func (s *GachaStore) Balance(ctx context.Context, userID string) (int64, error) {
	var wallet models.Wallet
	err := s.db.NewSelect().
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

func (s *GachaStore) WithTx(ctx context.Context, fn func(tx gacha.Tx) error) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, defaultTxTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(timeoutCtx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&gachaTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type gachaTx struct {
	tx bun.Tx
}

func (t *gachaTx) Owns(ctx context.Context, userID string, cardID int64) (bool, error) {
	exists, err := t.tx.NewSelect().
		Model((*models.CollectionEntry)(nil)).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}
	return exists, nil
}

func (t *gachaTx) AddCopy(ctx context.Context, userID string, cardID int64) error {
	_, err := t.tx.NewInsert().
		Model(&models.CollectionEntry{
			UserID:   userID,
			CardID:   cardID,
			Obtained: time.Now(),
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add collection entry: %w", err)
	}
	return nil
}

func (t *gachaTx) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	wallet := models.Wallet{
		UserID:    userID,
		Balance:   amount,
		UpdatedAt: time.Now(),
	}
	_, err := t.tx.NewInsert().
		Model(&wallet).
		On("CONFLICT (user_id) DO UPDATE").
		Set("balance = w.balance + EXCLUDED.balance").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("balance").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to credit wallet: %w", err)
	}
	return wallet.Balance, nil
}

func (t *gachaTx) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	var wallet models.Wallet
	err := t.tx.NewSelect().
		Model(&wallet).
		Column("balance").
		Where("user_id = ?", userID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, &gacha.InsufficientFundsError{Required: amount, Available: 0}
		}
		return 0, fmt.Errorf("failed to lock wallet: %w", err)
	}

	if wallet.Balance < amount {
		return 0, &gacha.InsufficientFundsError{Required: amount, Available: wallet.Balance}
	}

	result, err := t.tx.NewUpdate().
		Model((*models.Wallet)(nil)).
		Set("balance = balance - ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to debit wallet: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return 0, &gacha.InsufficientFundsError{Required: amount, Available: wallet.Balance}
	}
	return wallet.Balance - amount, nil
}

func (t *gachaTx) SetLastAction(ctx context.Context, userID string, kind gacha.ActionKind, at time.Time) error {
	_, err := t.tx.NewInsert().
		Model(&models.Cooldown{
			UserID:     userID,
			Action:     string(kind),
			LastAction: at,
		}).
		On("CONFLICT (user_id, action) DO UPDATE").
		Set("last_action = EXCLUDED.last_action").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set %s cooldown: %w", kind, err)
	}
	return nil
}
