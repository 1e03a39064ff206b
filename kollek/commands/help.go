package commands

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/kollekbot/kollek/kollek"
	"github.com/kollekbot/kollek/kollek/config"
	"github.com/kollekbot/kollek/kollek/gacha"
	"github.com/kollekbot/kollek/kollek/utils"
)

var Help = discord.SlashCommandCreate{
	Name:        "aide",
	Description: "❓ Liste les commandes du bot.",
}

func HelpHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		cfg := b.Engine.Config()

		embed := discord.NewEmbedBuilder().
			SetTitle("❓ Commandes Kollek").
			SetColor(config.InfoColor).
			AddField("/pioche",
				fmt.Sprintf("Pioche une carte aléatoire (toutes les %s).",
					utils.FormatRemaining(cfg.Cooldowns[gacha.ActionDraw])), false).
			AddField("/booster",
				fmt.Sprintf("Ouvre un booster de %d cartes pour %d koins.",
					cfg.BoosterSize, cfg.BoosterCost), false).
			AddField("/bonus",
				fmt.Sprintf("Récupère %d koins (toutes les %s).",
					cfg.BonusAmount, utils.FormatRemaining(cfg.Cooldowns[gacha.ActionBonus])), false).
			AddField("/de",
				fmt.Sprintf("Lance un dé à %d faces et gagne la face ×%d en koins (toutes les %s).",
					cfg.DiceSides, cfg.DiceMultiplier, utils.FormatRemaining(cfg.Cooldowns[gacha.ActionRoll])), false).
			AddField("/kollek", "Affiche ta collection et ton solde.", false).
			AddField("/carte", "Affiche les détails d'une carte du catalogue.", false).
			AddField("/solde", "Affiche ton solde et tes prochaines actions disponibles.", false).
			SetFooterText("💰 Les cartes en double rapportent des koins selon leur rareté !").
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
