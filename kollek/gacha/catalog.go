package gacha

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Card is one immutable catalog entry. The catalog is loaded once at
// startup and never mutated afterwards.
type Card struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Image  string `json:"image"`
}

// Catalog indexes the card list by id and by rarity.
type Catalog struct {
	cards    []Card
	byID     map[int64]Card
	byRarity map[Rarity][]Card
}

// NewCatalog builds a catalog from static card data. Duplicate ids and
// unknown rarity labels are rejected.
func NewCatalog(cards []Card) (*Catalog, error) {
	c := &Catalog{
		cards:    make([]Card, len(cards)),
		byID:     make(map[int64]Card, len(cards)),
		byRarity: make(map[Rarity][]Card),
	}
	copy(c.cards, cards)
	sort.Slice(c.cards, func(i, j int) bool { return c.cards[i].ID < c.cards[j].ID })

	for _, card := range c.cards {
		if _, err := ParseRarity(string(card.Rarity)); err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", card.ID, card.Name, err)
		}
		if _, exists := c.byID[card.ID]; exists {
			return nil, fmt.Errorf("duplicate card id %d in catalog", card.ID)
		}
		c.byID[card.ID] = card
		c.byRarity[card.Rarity] = append(c.byRarity[card.Rarity], card)
	}
	return c, nil
}

// LoadCatalog reads the card catalog from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card catalog: %w", err)
	}
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to parse card catalog: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("card catalog %s is empty", path)
	}
	return NewCatalog(cards)
}

// ValidateAgainst checks that every rarity the table can produce has at
// least one card. This runs at startup so a misconfigured catalog can
// never surface as a mid-draw failure.
func (c *Catalog) ValidateAgainst(table Table) error {
	for _, rarity := range RarityOrder {
		if table[rarity] > 0 && len(c.byRarity[rarity]) == 0 {
			return fmt.Errorf("catalog misconfigured: no cards of rarity %q", rarity)
		}
	}
	return nil
}

// CardsOfRarity returns the catalog slice for one rarity. The slice is
// shared; callers must not modify it.
func (c *Catalog) CardsOfRarity(rarity Rarity) []Card {
	return c.byRarity[rarity]
}

// ByID looks a card up by its catalog id.
func (c *Catalog) ByID(id int64) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// All returns every card ordered by id.
func (c *Catalog) All() []Card {
	return c.cards
}

func (c *Catalog) Size() int {
	return len(c.cards)
}
