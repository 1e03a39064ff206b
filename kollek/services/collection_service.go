package services

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/kollekbot/kollek/kollek/database/repositories"
	"github.com/kollekbot/kollek/kollek/gacha"
)

const summaryCacheSize = 1024

// CollectionSummary is the aggregated view behind the collection and
// balance commands.
type CollectionSummary struct {
	Entries     []CollectionCard
	UniqueCards int
	TotalCopies int
	Balance     int64
}

// CollectionCard pairs a catalog card with the user's copy count.
type CollectionCard struct {
	Card   gacha.Card
	Copies int
}

// CollectionService aggregates a user's collection and balance into a
// display-ready summary, cached per user. Commands invalidate the cache
// after any draw so a stale summary is never shown.
type CollectionService struct {
	collections repositories.CollectionRepository
	wallets     repositories.WalletRepository
	catalog     *gacha.Catalog
	cache       *lru.Cache
}

func NewCollectionService(collections repositories.CollectionRepository, wallets repositories.WalletRepository, catalog *gacha.Catalog) *CollectionService {
	cache, _ := lru.New(summaryCacheSize)
	return &CollectionService{
		collections: collections,
		wallets:     wallets,
		catalog:     catalog,
		cache:       cache,
	}
}

func (s *CollectionService) Summary(ctx context.Context, userID string) (*CollectionSummary, error) {
	if cached, ok := s.cache.Get(userID); ok {
		return cached.(*CollectionSummary), nil
	}

	owned, err := s.collections.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.wallets.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &CollectionSummary{Balance: balance}
	for _, o := range owned {
		card, ok := s.catalog.ByID(o.CardID)
		if !ok {
			// Entry for a card no longer in the catalog; count the
			// copies but skip the display row.
			summary.TotalCopies += o.Copies
			continue
		}
		summary.Entries = append(summary.Entries, CollectionCard{Card: card, Copies: o.Copies})
		summary.UniqueCards++
		summary.TotalCopies += o.Copies
	}

	s.cache.Add(userID, summary)
	return summary, nil
}

// Completion formats collection progress against the catalog size.
func (s *CollectionService) Completion(summary *CollectionSummary) string {
	return fmt.Sprintf("%d/%d", summary.UniqueCards, s.catalog.Size())
}

// Invalidate drops the cached summary for a user. Called after every
// mutation of that user's collection or wallet.
func (s *CollectionService) Invalidate(userID string) {
	s.cache.Remove(userID)
}
