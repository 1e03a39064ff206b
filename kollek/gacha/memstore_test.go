package gacha

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// memStore is an in-memory Store with copy-on-write transactions. A
// failed transaction leaves the committed state untouched, matching the
// atomicity the engine relies on.
type memStore struct {
	mu       sync.Mutex
	balances map[string]int64
	owned    map[string]map[int64]int
	last     map[string]time.Time
}

func newMemStore() *memStore {
	return &memStore{
		balances: make(map[string]int64),
		owned:    make(map[string]map[int64]int),
		last:     make(map[string]time.Time),
	}
}

func actionKey(userID string, kind ActionKind) string {
	return userID + "|" + string(kind)
}

func (s *memStore) LastAction(_ context.Context, userID string, kind ActionKind) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[actionKey(userID, kind)], nil
}

func (s *memStore) Balance(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[userID], nil
}

func (s *memStore) copies(userID string, cardID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owned[userID][cardID]
}

func (s *memStore) totalCopies(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int
	for _, n := range s.owned[userID] {
		total += n
	}
	return total
}

func (s *memStore) setBalance(userID string, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[userID] = balance
}

func (s *memStore) addOwned(userID string, cardID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owned[userID] == nil {
		s.owned[userID] = make(map[int64]int)
	}
	s.owned[userID][cardID]++
}

func (s *memStore) WithTx(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		balances: make(map[string]int64, len(s.balances)),
		owned:    make(map[string]map[int64]int, len(s.owned)),
		last:     make(map[string]time.Time, len(s.last)),
	}
	for k, v := range s.balances {
		tx.balances[k] = v
	}
	for user, cards := range s.owned {
		clone := make(map[int64]int, len(cards))
		for id, n := range cards {
			clone[id] = n
		}
		tx.owned[user] = clone
	}
	for k, v := range s.last {
		tx.last[k] = v
	}

	if err := fn(tx); err != nil {
		return err
	}
	s.balances = tx.balances
	s.owned = tx.owned
	s.last = tx.last
	return nil
}

type memTx struct {
	balances map[string]int64
	owned    map[string]map[int64]int
	last     map[string]time.Time
}

func (t *memTx) Owns(_ context.Context, userID string, cardID int64) (bool, error) {
	return t.owned[userID][cardID] > 0, nil
}

func (t *memTx) AddCopy(_ context.Context, userID string, cardID int64) error {
	if t.owned[userID] == nil {
		t.owned[userID] = make(map[int64]int)
	}
	t.owned[userID][cardID]++
	return nil
}

func (t *memTx) Credit(_ context.Context, userID string, amount int64) (int64, error) {
	t.balances[userID] += amount
	return t.balances[userID], nil
}

func (t *memTx) Debit(_ context.Context, userID string, amount int64) (int64, error) {
	balance := t.balances[userID]
	if balance < amount {
		return 0, &InsufficientFundsError{Required: amount, Available: balance}
	}
	t.balances[userID] = balance - amount
	return t.balances[userID], nil
}

func (t *memTx) SetLastAction(_ context.Context, userID string, kind ActionKind, at time.Time) error {
	t.last[actionKey(userID, kind)] = at
	return nil
}

// failingStore wraps memStore and fails AddCopy while armed, used to
// prove that a failed draw does not consume the cooldown window.
type failingStore struct {
	*memStore
	failAdds bool
}

func (s *failingStore) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	return s.memStore.WithTx(ctx, func(tx Tx) error {
		return fn(&failingTx{Tx: tx, store: s})
	})
}

type failingTx struct {
	Tx
	store *failingStore
}

func (t *failingTx) AddCopy(ctx context.Context, userID string, cardID int64) error {
	if t.store.failAdds {
		return fmt.Errorf("simulated storage failure")
	}
	return t.Tx.AddCopy(ctx, userID, cardID)
}
