package services

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/kollekbot/kollek/kollek/gacha"
)

// cardSearchItems implements fuzzy.Source over the catalog.
type cardSearchItems []gacha.Card

func (items cardSearchItems) Len() int {
	return len(items)
}

func (items cardSearchItems) String(i int) string {
	return strings.ToLower(items[i].Name)
}

// CardSearchService finds catalog cards by approximate name, used by
// the card lookup command and its autocomplete.
type CardSearchService struct {
	items cardSearchItems
}

func NewCardSearchService(catalog *gacha.Catalog) *CardSearchService {
	return &CardSearchService{items: cardSearchItems(catalog.All())}
}

// Search returns the best matches for query ordered by relevance,
// capped at limit.
func (s *CardSearchService) Search(query string, limit int) []gacha.Card {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}

	matches := fuzzy.FindFrom(normalized, s.items)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]gacha.Card, 0, len(matches))
	for _, m := range matches {
		results = append(results, s.items[m.Index])
	}
	return results
}
