package services

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kollekbot/kollek/kollek/database/repositories"
	"github.com/kollekbot/kollek/kollek/database/repositories/mock"
	"github.com/kollekbot/kollek/kollek/gacha"
)

func testCatalog(t *testing.T) *gacha.Catalog {
	t.Helper()
	catalog, err := gacha.NewCatalog([]gacha.Card{
		{ID: 1, Name: "Brindille", Rarity: gacha.RarityCommon, Image: "1.png"},
		{ID: 2, Name: "Sirène", Rarity: gacha.RarityRare, Image: "2.png"},
		{ID: 3, Name: "Griffon", Rarity: gacha.RarityEpic, Image: "3.png"},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return catalog
}

func TestCollectionService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)

	collections := mock.NewMockCollectionRepository(ctrl)
	collections.EXPECT().
		ListOwned(gomock.Any(), "123").
		Return([]repositories.OwnedCard{
			{CardID: 1, Copies: 3},
			{CardID: 2, Copies: 1},
		}, nil)

	wallets := mock.NewMockWalletRepository(ctrl)
	wallets.EXPECT().
		GetBalance(gomock.Any(), "123").
		Return(int64(42), nil)

	s := NewCollectionService(collections, wallets, testCatalog(t))

	summary, err := s.Summary(context.Background(), "123")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.UniqueCards != 2 {
		t.Errorf("UniqueCards = %d, want 2", summary.UniqueCards)
	}
	if summary.TotalCopies != 4 {
		t.Errorf("TotalCopies = %d, want 4", summary.TotalCopies)
	}
	if summary.Balance != 42 {
		t.Errorf("Balance = %d, want 42", summary.Balance)
	}
	if len(summary.Entries) != 2 || summary.Entries[0].Card.Name != "Brindille" {
		t.Errorf("Entries = %+v, want Brindille first", summary.Entries)
	}
	if got := s.Completion(summary); got != "2/3" {
		t.Errorf("Completion() = %q, want \"2/3\"", got)
	}
}

func TestCollectionService_SummaryCaching(t *testing.T) {
	ctrl := gomock.NewController(t)

	collections := mock.NewMockCollectionRepository(ctrl)
	wallets := mock.NewMockWalletRepository(ctrl)

	// Two fetches expected: the initial load and the reload after
	// invalidation. The cached read in between must not hit the
	// repositories.
	collections.EXPECT().
		ListOwned(gomock.Any(), "123").
		Return([]repositories.OwnedCard{{CardID: 1, Copies: 1}}, nil).
		Times(2)
	wallets.EXPECT().
		GetBalance(gomock.Any(), "123").
		Return(int64(0), nil).
		Times(2)

	s := NewCollectionService(collections, wallets, testCatalog(t))
	ctx := context.Background()

	if _, err := s.Summary(ctx, "123"); err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if _, err := s.Summary(ctx, "123"); err != nil {
		t.Fatalf("cached Summary() error = %v", err)
	}

	s.Invalidate("123")
	if _, err := s.Summary(ctx, "123"); err != nil {
		t.Fatalf("Summary() after invalidation error = %v", err)
	}
}

func TestCollectionService_SummarySkipsUnknownCards(t *testing.T) {
	ctrl := gomock.NewController(t)

	collections := mock.NewMockCollectionRepository(ctrl)
	collections.EXPECT().
		ListOwned(gomock.Any(), "123").
		Return([]repositories.OwnedCard{
			{CardID: 1, Copies: 2},
			{CardID: 99, Copies: 5},
		}, nil)

	wallets := mock.NewMockWalletRepository(ctrl)
	wallets.EXPECT().
		GetBalance(gomock.Any(), "123").
		Return(int64(0), nil)

	s := NewCollectionService(collections, wallets, testCatalog(t))

	summary, err := s.Summary(context.Background(), "123")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.UniqueCards != 1 {
		t.Errorf("UniqueCards = %d, want 1", summary.UniqueCards)
	}
	if summary.TotalCopies != 7 {
		t.Errorf("TotalCopies = %d, want 7", summary.TotalCopies)
	}
}

func TestLocalImageResolver_CardImageURL(t *testing.T) {
	r := NewLocalImageResolver("http://localhost:8877/")
	card := gacha.Card{ID: 1, Image: "1.png"}
	if got := r.CardImageURL(card); got != "http://localhost:8877/cartes/1.png" {
		t.Errorf("CardImageURL() = %q", got)
	}
}
