package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kollekbot/kollek/kollek/gacha"
)

type stubImageVerifier struct {
	mu      sync.Mutex
	missing map[int64]bool
	checked int
}

func (v *stubImageVerifier) VerifyCardImage(_ context.Context, card gacha.Card) error {
	v.mu.Lock()
	v.checked++
	v.mu.Unlock()
	if v.missing[card.ID] {
		return errors.New("object not found")
	}
	return nil
}

func TestVerifyCatalogImages(t *testing.T) {
	catalog := testCatalog(t)
	v := &stubImageVerifier{}

	if err := VerifyCatalogImages(context.Background(), v, catalog.All()); err != nil {
		t.Errorf("VerifyCatalogImages() error = %v, want nil", err)
	}
	if v.checked != catalog.Size() {
		t.Errorf("verified %d cards, want %d", v.checked, catalog.Size())
	}
}

func TestVerifyCatalogImages_ReportsMissing(t *testing.T) {
	catalog := testCatalog(t)
	v := &stubImageVerifier{missing: map[int64]bool{2: true}}

	if err := VerifyCatalogImages(context.Background(), v, catalog.All()); err == nil {
		t.Error("VerifyCatalogImages() expected error for missing image, got nil")
	}
}
