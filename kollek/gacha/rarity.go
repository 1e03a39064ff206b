package gacha

import (
	"fmt"
	"math"
)

// Rarity is a card tier with an associated draw probability and
// duplicate reward value.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// RarityOrder is the canonical sampling order. Sampling iterates this
// slice, never the map, so the cumulative bounds are stable across runs.
var RarityOrder = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

const probabilitySumTolerance = 1e-6

// ParseRarity converts a config or catalog label into a Rarity.
func ParseRarity(s string) (Rarity, error) {
	switch Rarity(s) {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return Rarity(s), nil
	}
	return "", fmt.Errorf("unknown rarity %q", s)
}

// Rank returns the position of r in the canonical order, 0 for common.
func (r Rarity) Rank() int {
	for i, known := range RarityOrder {
		if known == r {
			return i
		}
	}
	return -1
}

// Table maps each rarity to its draw probability. Probabilities must
// cover every rarity and sum to 1 within tolerance.
type Table map[Rarity]float64

func (t Table) Validate() error {
	if len(t) != len(RarityOrder) {
		return fmt.Errorf("rarity table has %d entries, want %d", len(t), len(RarityOrder))
	}
	var sum float64
	for _, rarity := range RarityOrder {
		p, ok := t[rarity]
		if !ok {
			return fmt.Errorf("rarity table is missing %q", rarity)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("probability %f for %q is outside [0,1]", p, rarity)
		}
		sum += p
	}
	if math.Abs(sum-1) > probabilitySumTolerance {
		return fmt.Errorf("rarity probabilities sum to %f, want 1", sum)
	}
	return nil
}

// Sample maps one uniform random value in [0,1) to a rarity by walking
// the cumulative bounds in canonical order. If floating-point drift
// leaves r above every bound, the highest rarity with positive
// probability wins. Zero-probability rarities are never returned, so
// every sampled rarity has cards on a catalog that passed startup
// validation.
func (t Table) Sample(r float64) Rarity {
	var cumulative float64
	fallback := RarityOrder[0]
	for _, rarity := range RarityOrder {
		p := t[rarity]
		if p <= 0 {
			continue
		}
		cumulative += p
		if r < cumulative {
			return rarity
		}
		fallback = rarity
	}
	return fallback
}
