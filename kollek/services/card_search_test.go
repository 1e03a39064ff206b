package services

import (
	"testing"

	"github.com/kollekbot/kollek/kollek/gacha"
)

func TestCardSearchService_Search(t *testing.T) {
	catalog, err := gacha.NewCatalog([]gacha.Card{
		{ID: 1, Name: "Dragon d'Or", Rarity: gacha.RarityLegendary},
		{ID: 2, Name: "Dragonnet", Rarity: gacha.RarityCommon},
		{ID: 3, Name: "Sirène", Rarity: gacha.RarityRare},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	s := NewCardSearchService(catalog)

	tests := []struct {
		name      string
		query     string
		limit     int
		wantNames []string
	}{
		{
			name:      "ExactName",
			query:     "sirène",
			limit:     5,
			wantNames: []string{"Sirène"},
		},
		{
			name:      "PartialMatchesBoth",
			query:     "dragon",
			limit:     5,
			wantNames: []string{"Dragon d'Or", "Dragonnet"},
		},
		{
			name:      "EmptyQuery",
			query:     "  ",
			limit:     5,
			wantNames: nil,
		},
		{
			name:      "NoMatch",
			query:     "zzzz",
			limit:     5,
			wantNames: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(tt.query, tt.limit)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Search(%q) returned %d cards, want %d", tt.query, len(got), len(tt.wantNames))
			}
			// Relevance ties keep catalog order, so compare as a set.
			found := make(map[string]bool, len(got))
			for _, card := range got {
				found[card.Name] = true
			}
			for _, name := range tt.wantNames {
				if !found[name] {
					t.Errorf("Search(%q) missing %q, got %v", tt.query, name, got)
				}
			}
		})
	}

	if got := s.Search("dragon", 1); len(got) != 1 {
		t.Errorf("Search with limit 1 returned %d cards", len(got))
	}
}
