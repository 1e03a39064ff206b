package gacha

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// ActionKind names a cooldown clock. Each kind runs fully independently
// per user.
type ActionKind string

const (
	ActionDraw  ActionKind = "draw"
	ActionBonus ActionKind = "bonus"
	ActionRoll  ActionKind = "roll"
)

// Tx is the set of mutations available inside one atomic gacha
// sequence. Either every mutation issued through a Tx is applied, or
// none is.
type Tx interface {
	// Owns reports whether the user holds at least one copy of the card.
	Owns(ctx context.Context, userID string, cardID int64) (bool, error)
	// AddCopy appends one copy to the user's collection, duplicate or not.
	AddCopy(ctx context.Context, userID string, cardID int64) error
	// Credit adds amount to the user's balance and returns the new balance.
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	// Debit subtracts amount if the balance covers it and returns the new
	// balance; otherwise it returns *InsufficientFundsError and mutates
	// nothing.
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
	// SetLastAction overwrites the cooldown clock for (user, kind).
	SetLastAction(ctx context.Context, userID string, kind ActionKind, at time.Time) error
}

// Store is the persistent state the engine operates on. The engine holds
// no state of its own beyond the per-user locks; everything durable
// lives behind this interface.
type Store interface {
	// LastAction returns the cooldown clock for (user, kind); the zero
	// time means the user never performed the action.
	LastAction(ctx context.Context, userID string, kind ActionKind) (time.Time, error)
	Balance(ctx context.Context, userID string) (int64, error)
	// WithTx runs fn atomically. A non-nil error from fn discards every
	// mutation issued through the Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

// Config is the externally supplied economy tuning. The engine never
// hardcodes odds, rewards or cooldowns.
type Config struct {
	Table            Table
	DuplicateRewards map[Rarity]int64
	Cooldowns        map[ActionKind]time.Duration
	BoosterSize      int
	BoosterCost      int64
	BonusAmount      int64
	DiceSides        int
	DiceMultiplier   int64
}

func (c Config) Validate() error {
	if err := c.Table.Validate(); err != nil {
		return err
	}
	prev := int64(-1)
	for _, rarity := range RarityOrder {
		reward, ok := c.DuplicateRewards[rarity]
		if !ok {
			return fmt.Errorf("no duplicate reward configured for %q", rarity)
		}
		if reward <= prev {
			return fmt.Errorf("duplicate reward for %q (%d) does not increase with rarity", rarity, reward)
		}
		prev = reward
	}
	for _, kind := range []ActionKind{ActionDraw, ActionBonus, ActionRoll} {
		if c.Cooldowns[kind] <= 0 {
			return fmt.Errorf("no cooldown configured for action %q", kind)
		}
	}
	if c.BoosterSize <= 0 {
		return fmt.Errorf("booster size must be positive, got %d", c.BoosterSize)
	}
	if c.BoosterCost <= 0 {
		return fmt.Errorf("booster cost must be positive, got %d", c.BoosterCost)
	}
	if c.BonusAmount <= 0 {
		return fmt.Errorf("bonus amount must be positive, got %d", c.BonusAmount)
	}
	if c.DiceSides < 2 {
		return fmt.Errorf("dice need at least 2 sides, got %d", c.DiceSides)
	}
	if c.DiceMultiplier <= 0 {
		return fmt.Errorf("dice multiplier must be positive, got %d", c.DiceMultiplier)
	}
	return nil
}

// DrawResult is the outcome of one card acquisition.
type DrawResult struct {
	Card       Card
	Duplicate  bool
	Reward     int64
	NewBalance int64 // balance after the duplicate reward, 0 reward leaves it unset
}

// BoosterResult is the ordered outcome of one paid batch of draws.
type BoosterResult struct {
	Cards []DrawResult
	Cost  int64
}

type BonusResult struct {
	Amount     int64
	NewBalance int64
}

type RollResult struct {
	Roll       int
	Payout     int64
	NewBalance int64
}

// Engine composes the sampler, catalog, cooldown gate and ledgers into
// the user-facing draw operations.
type Engine struct {
	cfg     Config
	catalog *Catalog
	store   Store
	locks   *UserLocks

	randMu sync.Mutex
	rng    *rand.Rand
	now    func() time.Time
}

type Option func(*Engine)

// WithRandSource replaces the engine's randomness, used by tests to
// force specific draws.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		e.rng = rand.New(src)
	}
}

// WithClock replaces the engine's clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New validates the configuration against the catalog and builds an
// engine. A rarity with draw probability but no cards fails here, never
// mid-draw.
func New(cfg Config, catalog *Catalog, store Store, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gacha config: %w", err)
	}
	if err := catalog.ValidateAgainst(cfg.Table); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		catalog: catalog,
		store:   store,
		locks:   NewUserLocks(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Draw performs one cooldown-gated single draw. The collection append,
// the duplicate reward and the cooldown commit are applied in one
// transaction; a failure anywhere leaves the cooldown window unconsumed.
func (e *Engine) Draw(ctx context.Context, userID string) (*DrawResult, error) {
	unlock := e.locks.Lock(userID)
	defer unlock()

	now := e.now()
	if err := e.checkCooldown(ctx, userID, ActionDraw, now); err != nil {
		return nil, err
	}

	var result DrawResult
	err := e.store.WithTx(ctx, func(tx Tx) error {
		r, err := e.drawOne(ctx, tx, userID)
		if err != nil {
			return err
		}
		result = *r
		return tx.SetLastAction(ctx, userID, ActionDraw, now)
	})
	if err != nil {
		return nil, fmt.Errorf("draw failed: %w", err)
	}

	slog.Debug("Draw completed",
		slog.String("user_id", userID),
		slog.Int64("card_id", result.Card.ID),
		slog.String("rarity", string(result.Card.Rarity)),
		slog.Bool("duplicate", result.Duplicate))
	return &result, nil
}

// OpenBooster debits the booster cost and performs the configured number
// of independent draws in one transaction. The booster is gated by cost,
// not by the single-draw cooldown; an insufficient balance fails the
// whole booster with nothing mutated. Duplicate rewards apply to each
// drawn card exactly as they do for single draws.
func (e *Engine) OpenBooster(ctx context.Context, userID string) (*BoosterResult, error) {
	unlock := e.locks.Lock(userID)
	defer unlock()

	result := BoosterResult{Cost: e.cfg.BoosterCost}
	err := e.store.WithTx(ctx, func(tx Tx) error {
		if _, err := tx.Debit(ctx, userID, e.cfg.BoosterCost); err != nil {
			return err
		}
		for i := 0; i < e.cfg.BoosterSize; i++ {
			r, err := e.drawOne(ctx, tx, userID)
			if err != nil {
				return err
			}
			result.Cards = append(result.Cards, *r)
		}
		return nil
	})
	if err != nil {
		var insufficient *InsufficientFundsError
		if errors.As(err, &insufficient) {
			return nil, insufficient
		}
		return nil, fmt.Errorf("booster failed: %w", err)
	}

	slog.Debug("Booster opened",
		slog.String("user_id", userID),
		slog.Int("cards", len(result.Cards)),
		slog.Int64("cost", result.Cost))
	return &result, nil
}

// ClaimBonus credits the fixed bonus amount under its own cooldown
// clock. No sampling is involved.
func (e *Engine) ClaimBonus(ctx context.Context, userID string) (*BonusResult, error) {
	unlock := e.locks.Lock(userID)
	defer unlock()

	now := e.now()
	if err := e.checkCooldown(ctx, userID, ActionBonus, now); err != nil {
		return nil, err
	}

	result := BonusResult{Amount: e.cfg.BonusAmount}
	err := e.store.WithTx(ctx, func(tx Tx) error {
		balance, err := tx.Credit(ctx, userID, e.cfg.BonusAmount)
		if err != nil {
			return err
		}
		result.NewBalance = balance
		return tx.SetLastAction(ctx, userID, ActionBonus, now)
	})
	if err != nil {
		return nil, fmt.Errorf("bonus claim failed: %w", err)
	}
	return &result, nil
}

// RollDice rolls the configured die and credits face times multiplier,
// under the roll cooldown clock.
func (e *Engine) RollDice(ctx context.Context, userID string) (*RollResult, error) {
	unlock := e.locks.Lock(userID)
	defer unlock()

	now := e.now()
	if err := e.checkCooldown(ctx, userID, ActionRoll, now); err != nil {
		return nil, err
	}

	roll := e.intn(e.cfg.DiceSides) + 1
	result := RollResult{
		Roll:   roll,
		Payout: int64(roll) * e.cfg.DiceMultiplier,
	}
	err := e.store.WithTx(ctx, func(tx Tx) error {
		balance, err := tx.Credit(ctx, userID, result.Payout)
		if err != nil {
			return err
		}
		result.NewBalance = balance
		return tx.SetLastAction(ctx, userID, ActionRoll, now)
	})
	if err != nil {
		return nil, fmt.Errorf("dice roll failed: %w", err)
	}
	return &result, nil
}

// checkCooldown reads the clock for (user, kind) without mutating it.
func (e *Engine) checkCooldown(ctx context.Context, userID string, kind ActionKind, now time.Time) error {
	last, err := e.store.LastAction(ctx, userID, kind)
	if err != nil {
		return fmt.Errorf("failed to read %s cooldown: %w", kind, err)
	}
	if last.IsZero() {
		return nil
	}
	if elapsed := now.Sub(last); elapsed < e.cfg.Cooldowns[kind] {
		return &CooldownActiveError{Kind: kind, Remaining: e.cfg.Cooldowns[kind] - elapsed}
	}
	return nil
}

// drawOne runs steps sample → pick → duplicate check → append → reward
// for a single card inside the caller's transaction. Ownership is
// checked before the append, so a second copy drawn later in the same
// booster counts as a duplicate.
func (e *Engine) drawOne(ctx context.Context, tx Tx, userID string) (*DrawResult, error) {
	rarity := e.cfg.Table.Sample(e.float64())
	candidates := e.catalog.CardsOfRarity(rarity)
	card := candidates[e.intn(len(candidates))]

	owned, err := tx.Owns(ctx, userID, card.ID)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if err := tx.AddCopy(ctx, userID, card.ID); err != nil {
		return nil, fmt.Errorf("failed to add card %d: %w", card.ID, err)
	}

	result := DrawResult{Card: card, Duplicate: owned}
	if owned {
		result.Reward = e.cfg.DuplicateRewards[card.Rarity]
		balance, err := tx.Credit(ctx, userID, result.Reward)
		if err != nil {
			return nil, fmt.Errorf("failed to credit duplicate reward: %w", err)
		}
		result.NewBalance = balance
	}
	return &result, nil
}

func (e *Engine) float64() float64 {
	e.randMu.Lock()
	defer e.randMu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) intn(n int) int {
	e.randMu.Lock()
	defer e.randMu.Unlock()
	return e.rng.Intn(n)
}
