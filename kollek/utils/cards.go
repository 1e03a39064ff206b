package utils

import (
	"math/rand"

	"github.com/kollekbot/kollek/kollek/config"
	"github.com/kollekbot/kollek/kollek/gacha"
)

// RarityEmoji returns the colored dot shown next to a card.
func RarityEmoji(r gacha.Rarity) string {
	switch r {
	case gacha.RarityCommon:
		return "⚪"
	case gacha.RarityRare:
		return "🔵"
	case gacha.RarityEpic:
		return "🟣"
	case gacha.RarityLegendary:
		return "🟡"
	}
	return "❔"
}

// RarityColor returns the embed color for a rarity.
func RarityColor(r gacha.Rarity) int {
	switch r {
	case gacha.RarityCommon:
		return config.RarityCommonColor
	case gacha.RarityRare:
		return config.RarityRareColor
	case gacha.RarityEpic:
		return config.RarityEpicColor
	case gacha.RarityLegendary:
		return config.RarityLegendaryColor
	}
	return config.InfoColor
}

// RarityLabel returns the French display name for a rarity.
func RarityLabel(r gacha.Rarity) string {
	switch r {
	case gacha.RarityCommon:
		return "commune"
	case gacha.RarityRare:
		return "rare"
	case gacha.RarityEpic:
		return "épique"
	case gacha.RarityLegendary:
		return "légendaire"
	}
	return string(r)
}

var rarityReactions = map[gacha.Rarity][]string{
	gacha.RarityCommon: {
		"Une carte toute simple",
		"Rien d'extra, mais c'est toujours ça",
		"Basique",
		"Bof",
	},
	gacha.RarityRare: {
		"Pas mal, une rare !",
		"Une trouvaille sympa !",
		"Ça commence à devenir intéressant.",
		"Une carte rare, GG !",
	},
	gacha.RarityEpic: {
		"Wow, épique !",
		"Une sacrée carte !",
		"La chance te sourit.",
		"On touche au légendaire… presque.",
	},
	gacha.RarityLegendary: {
		"🌟 LÉGENDAIRE !!",
	},
}

// RarityReaction picks a random flavor line for a drawn rarity.
func RarityReaction(r gacha.Rarity) string {
	lines := rarityReactions[r]
	if len(lines) == 0 {
		return ""
	}
	return lines[rand.Intn(len(lines))]
}
