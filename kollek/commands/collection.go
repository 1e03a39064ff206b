package commands

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/kollekbot/kollek/kollek"
	"github.com/kollekbot/kollek/kollek/config"
	"github.com/kollekbot/kollek/kollek/services"
	"github.com/kollekbot/kollek/kollek/utils"
)

var Collection = discord.SlashCommandCreate{
	Name:        "kollek",
	Description: "📚 Affiche ta collection de cartes et ton solde.",
}

func CollectionHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		userID := e.User().ID.String()
		userName := e.User().Username

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		summary, err := b.CollectionService.Summary(ctx, userID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Impossible de charger ta collection, réessaie plus tard.")
		}

		if len(summary.Entries) == 0 {
			return utils.EH.CreateInfoEmbed(e,
				fmt.Sprintf("Ta kollek est vide ! Lance `/pioche` pour obtenir ta première carte.\n💰 Solde : **%s**",
					utils.FormatKoins(summary.Balance)))
		}

		entries := summary.Entries
		totalPages := int(math.Ceil(float64(len(entries)) / float64(config.CardsPerPage)))
		footer := fmt.Sprintf("Cartes : %s • Total : %d copies • 💰 %s",
			b.CollectionService.Completion(summary), summary.TotalCopies, utils.FormatKoins(summary.Balance))

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				startIdx := page * config.CardsPerPage
				endIdx := min(startIdx+config.CardsPerPage, len(entries))

				var description strings.Builder
				for _, entry := range entries[startIdx:endIdx] {
					description.WriteString(formatCollectionLine(entry))
				}

				embed.SetTitle(fmt.Sprintf("📚 Kollek de %s", userName)).
					SetDescription(description.String()).
					SetColor(config.InfoColor).
					SetFooterText(footer)
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func formatCollectionLine(entry services.CollectionCard) string {
	line := fmt.Sprintf("%s **%s**", utils.RarityEmoji(entry.Card.Rarity), entry.Card.Name)
	if entry.Copies > 1 {
		line += fmt.Sprintf(" ×%d", entry.Copies)
	}
	return line + "\n"
}
