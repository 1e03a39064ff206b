package kollek

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/kollekbot/kollek/kollek/database"
	"github.com/kollekbot/kollek/kollek/gacha"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig         `toml:"log"`
	Bot    BotConfig         `toml:"bot"`
	DB     database.DBConfig `toml:"db"`
	Web    WebConfig         `toml:"web"`
	Spaces SpacesConfig      `toml:"spaces"`
	Game   GameConfig        `toml:"game"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// WebConfig configures the card art web server.
type WebConfig struct {
	Enabled   bool   `toml:"enabled"`
	Addr      string `toml:"addr"`
	CardsDir  string `toml:"cards_dir"`
	PublicURL string `toml:"public_url"`
}

// SpacesConfig configures card art hosted on DigitalOcean Spaces
// instead of the local web server.
type SpacesConfig struct {
	Enabled  bool   `toml:"enabled"`
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	CardRoot string `toml:"card_root"`
}

// GameConfig tunes the whole economy. Zero values fall back to the
// classic tuning so a minimal config file still runs.
type GameConfig struct {
	CatalogPath         string             `toml:"catalog_path"`
	DrawCooldownMinutes int                `toml:"draw_cooldown_minutes"`
	BonusCooldownHours  int                `toml:"bonus_cooldown_hours"`
	RollCooldownHours   int                `toml:"roll_cooldown_hours"`
	BoosterSize         int                `toml:"booster_size"`
	BoosterCost         int64              `toml:"booster_cost"`
	BonusAmount         int64              `toml:"bonus_amount"`
	DiceSides           int                `toml:"dice_sides"`
	DiceMultiplier      int64              `toml:"dice_multiplier"`
	Odds                map[string]float64 `toml:"odds"`
	DuplicateRewards    map[string]int64   `toml:"duplicate_rewards"`
}

func defaultOdds() gacha.Table {
	return gacha.Table{
		gacha.RarityCommon:    0.499,
		gacha.RarityRare:      0.32,
		gacha.RarityEpic:      0.171,
		gacha.RarityLegendary: 0.01,
	}
}

func defaultRewards() map[gacha.Rarity]int64 {
	return map[gacha.Rarity]int64{
		gacha.RarityCommon:    1,
		gacha.RarityRare:      3,
		gacha.RarityEpic:      7,
		gacha.RarityLegendary: 20,
	}
}

// EngineConfig converts the TOML game section into an engine config,
// applying the classic defaults for anything left unset.
func (c GameConfig) EngineConfig() (gacha.Config, error) {
	cfg := gacha.Config{
		Table:            defaultOdds(),
		DuplicateRewards: defaultRewards(),
		Cooldowns: map[gacha.ActionKind]time.Duration{
			gacha.ActionDraw:  90 * time.Minute,
			gacha.ActionBonus: 24 * time.Hour,
			gacha.ActionRoll:  4 * time.Hour,
		},
		BoosterSize:    3,
		BoosterCost:    10,
		BonusAmount:    5,
		DiceSides:      6,
		DiceMultiplier: 2,
	}

	if len(c.Odds) > 0 {
		table := make(gacha.Table, len(c.Odds))
		for label, p := range c.Odds {
			rarity, err := gacha.ParseRarity(label)
			if err != nil {
				return gacha.Config{}, fmt.Errorf("odds: %w", err)
			}
			table[rarity] = p
		}
		cfg.Table = table
	}
	if len(c.DuplicateRewards) > 0 {
		rewards := make(map[gacha.Rarity]int64, len(c.DuplicateRewards))
		for label, amount := range c.DuplicateRewards {
			rarity, err := gacha.ParseRarity(label)
			if err != nil {
				return gacha.Config{}, fmt.Errorf("duplicate_rewards: %w", err)
			}
			rewards[rarity] = amount
		}
		cfg.DuplicateRewards = rewards
	}
	if c.DrawCooldownMinutes > 0 {
		cfg.Cooldowns[gacha.ActionDraw] = time.Duration(c.DrawCooldownMinutes) * time.Minute
	}
	if c.BonusCooldownHours > 0 {
		cfg.Cooldowns[gacha.ActionBonus] = time.Duration(c.BonusCooldownHours) * time.Hour
	}
	if c.RollCooldownHours > 0 {
		cfg.Cooldowns[gacha.ActionRoll] = time.Duration(c.RollCooldownHours) * time.Hour
	}
	if c.BoosterSize > 0 {
		cfg.BoosterSize = c.BoosterSize
	}
	if c.BoosterCost > 0 {
		cfg.BoosterCost = c.BoosterCost
	}
	if c.BonusAmount > 0 {
		cfg.BonusAmount = c.BonusAmount
	}
	if c.DiceSides > 0 {
		cfg.DiceSides = c.DiceSides
	}
	if c.DiceMultiplier > 0 {
		cfg.DiceMultiplier = c.DiceMultiplier
	}

	return cfg, nil
}

// CatalogPathOrDefault returns the configured catalog file path.
func (c GameConfig) CatalogPathOrDefault() string {
	if c.CatalogPath != "" {
		return c.CatalogPath
	}
	return "cards.json"
}
