package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/kollekbot/kollek/kollek"
	"github.com/kollekbot/kollek/kollek/config"
	"github.com/kollekbot/kollek/kollek/gacha"
	"github.com/kollekbot/kollek/kollek/utils"
)

var Balance = discord.SlashCommandCreate{
	Name:        "solde",
	Description: "💰 Affiche ton solde de koins et tes prochaines actions.",
}

func BalanceHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		userID := e.User().ID.String()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		balance, err := b.WalletRepository.GetBalance(ctx, userID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Impossible de consulter ton solde, réessaie plus tard.")
		}

		var status strings.Builder
		status.WriteString(fmt.Sprintf("💰 Tu as **%s**.\n", utils.FormatKoins(balance)))

		cfg := b.Engine.Config()
		now := time.Now()
		for _, action := range []struct {
			kind  gacha.ActionKind
			label string
		}{
			{gacha.ActionDraw, "🎴 /pioche"},
			{gacha.ActionBonus, "🎁 /bonus"},
			{gacha.ActionRoll, "🎲 /de"},
		} {
			last, err := b.CooldownRepository.GetLastAction(ctx, userID, string(action.kind))
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Impossible de consulter ton solde, réessaie plus tard.")
			}
			status.WriteString(formatActionStatus(action.label, last, cfg.Cooldowns[action.kind], now))
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("💰 Solde de %s", e.User().Username)).
			SetDescription(status.String()).
			SetColor(config.InfoColor).
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}

func formatActionStatus(label string, last time.Time, cooldown time.Duration, now time.Time) string {
	if last.IsZero() || now.Sub(last) >= cooldown {
		return fmt.Sprintf("%s : disponible !\n", label)
	}
	remaining := cooldown - now.Sub(last)
	return fmt.Sprintf("%s : dans %s\n", label, utils.FormatRemaining(remaining))
}
