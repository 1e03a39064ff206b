package kollek

import (
	"testing"
	"time"

	"github.com/kollekbot/kollek/kollek/gacha"
)

func TestGameConfig_EngineConfig_Defaults(t *testing.T) {
	cfg, err := GameConfig{}.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default engine config invalid: %v", err)
	}

	if got := cfg.Table[gacha.RarityCommon]; got != 0.499 {
		t.Errorf("default common odds = %v, want 0.499", got)
	}
	if got := cfg.DuplicateRewards[gacha.RarityLegendary]; got != 20 {
		t.Errorf("default legendary reward = %d, want 20", got)
	}
	if got := cfg.Cooldowns[gacha.ActionDraw]; got != 90*time.Minute {
		t.Errorf("default draw cooldown = %s, want 90m", got)
	}
	if cfg.BoosterSize != 3 || cfg.BoosterCost != 10 {
		t.Errorf("default booster = %d cards for %d, want 3 for 10", cfg.BoosterSize, cfg.BoosterCost)
	}
}

func TestGameConfig_EngineConfig_Overrides(t *testing.T) {
	game := GameConfig{
		DrawCooldownMinutes: 30,
		BoosterSize:         5,
		BoosterCost:         25,
		Odds: map[string]float64{
			"common":    0.7,
			"rare":      0.2,
			"epic":      0.09,
			"legendary": 0.01,
		},
		DuplicateRewards: map[string]int64{
			"common":    2,
			"rare":      5,
			"epic":      10,
			"legendary": 50,
		},
	}

	cfg, err := game.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("engine config invalid: %v", err)
	}

	if got := cfg.Cooldowns[gacha.ActionDraw]; got != 30*time.Minute {
		t.Errorf("draw cooldown = %s, want 30m", got)
	}
	if got := cfg.Cooldowns[gacha.ActionBonus]; got != 24*time.Hour {
		t.Errorf("bonus cooldown = %s, want default 24h", got)
	}
	if cfg.BoosterSize != 5 || cfg.BoosterCost != 25 {
		t.Errorf("booster = %d cards for %d, want 5 for 25", cfg.BoosterSize, cfg.BoosterCost)
	}
	if got := cfg.Table[gacha.RarityCommon]; got != 0.7 {
		t.Errorf("common odds = %v, want 0.7", got)
	}
	if got := cfg.DuplicateRewards[gacha.RarityLegendary]; got != 50 {
		t.Errorf("legendary reward = %d, want 50", got)
	}
}

func TestGameConfig_EngineConfig_UnknownRarity(t *testing.T) {
	game := GameConfig{
		Odds: map[string]float64{"mythic": 1},
	}
	if _, err := game.EngineConfig(); err == nil {
		t.Error("EngineConfig() expected error for unknown rarity, got nil")
	}
}
