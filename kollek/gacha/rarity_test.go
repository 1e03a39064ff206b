package gacha

import (
	"math"
	"math/rand"
	"testing"
)

func validTable() Table {
	return Table{
		RarityCommon:    0.499,
		RarityRare:      0.32,
		RarityEpic:      0.171,
		RarityLegendary: 0.01,
	}
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{
			name:    "Valid",
			table:   validTable(),
			wantErr: false,
		},
		{
			name: "ValidWithZeroProbability",
			table: Table{
				RarityCommon:    1,
				RarityRare:      0,
				RarityEpic:      0,
				RarityLegendary: 0,
			},
			wantErr: false,
		},
		{
			name: "MissingRarity",
			table: Table{
				RarityCommon: 0.5,
				RarityRare:   0.3,
				RarityEpic:   0.2,
			},
			wantErr: true,
		},
		{
			name: "SumBelowOne",
			table: Table{
				RarityCommon:    0.4,
				RarityRare:      0.3,
				RarityEpic:      0.2,
				RarityLegendary: 0.05,
			},
			wantErr: true,
		},
		{
			name: "NegativeProbability",
			table: Table{
				RarityCommon:    1.1,
				RarityRare:      -0.1,
				RarityEpic:      0,
				RarityLegendary: 0,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.table.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Table.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTable_Sample(t *testing.T) {
	table := validTable()
	tests := []struct {
		name string
		r    float64
		want Rarity
	}{
		{name: "Zero", r: 0, want: RarityCommon},
		{name: "Common", r: 0.1, want: RarityCommon},
		{name: "Rare", r: 0.6, want: RarityRare},
		{name: "Epic", r: 0.9, want: RarityEpic},
		{name: "Legendary", r: 0.995, want: RarityLegendary},
		{name: "FallbackAboveAllBounds", r: 1.5, want: RarityLegendary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Sample(tt.r); got != tt.want {
				t.Errorf("Table.Sample(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestTable_Sample_DriftSkipsZeroProbabilityRarity(t *testing.T) {
	// Sums to 0.9999995: legal within tolerance, but leaves a drift gap
	// above the last positive bound.
	table := Table{
		RarityCommon:    0.5,
		RarityRare:      0.3,
		RarityEpic:      0.1999995,
		RarityLegendary: 0,
	}
	if got := table.Sample(0.9999999); got != RarityEpic {
		t.Errorf("Table.Sample(0.9999999) = %v, want %v", got, RarityEpic)
	}

	onlyCommon := Table{RarityCommon: 1, RarityRare: 0, RarityEpic: 0, RarityLegendary: 0}
	if got := onlyCommon.Sample(1.5); got != RarityCommon {
		t.Errorf("Table.Sample(1.5) = %v, want %v", got, RarityCommon)
	}
}

func TestTable_Sample_Distribution(t *testing.T) {
	table := validTable()
	rng := rand.New(rand.NewSource(42))

	const samples = 100000
	counts := make(map[Rarity]int)
	for i := 0; i < samples; i++ {
		counts[table.Sample(rng.Float64())]++
	}

	for _, rarity := range RarityOrder {
		got := float64(counts[rarity]) / samples
		want := table[rarity]
		if math.Abs(got-want) > 0.02 {
			t.Errorf("rarity %s drawn with frequency %f, want %f ±0.02", rarity, got, want)
		}
	}
}

func TestParseRarity(t *testing.T) {
	for _, rarity := range RarityOrder {
		got, err := ParseRarity(string(rarity))
		if err != nil {
			t.Errorf("ParseRarity(%q) error = %v", rarity, err)
		}
		if got != rarity {
			t.Errorf("ParseRarity(%q) = %v, want %v", rarity, got, rarity)
		}
	}
	if _, err := ParseRarity("mythic"); err == nil {
		t.Error("ParseRarity(\"mythic\") expected error, got nil")
	}
}

func TestRarity_Rank(t *testing.T) {
	for i, rarity := range RarityOrder {
		if got := rarity.Rank(); got != i {
			t.Errorf("%s.Rank() = %d, want %d", rarity, got, i)
		}
	}
	if got := Rarity("mythic").Rank(); got != -1 {
		t.Errorf("unknown rarity Rank() = %d, want -1", got)
	}
}
