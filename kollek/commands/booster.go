package commands

import (
	"context"
	"errors"
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

var Booster = discord.SlashCommandCreate{
	Name:        "booster",
	Description: "📦 Ouvre un booster de cartes contre des koins !",
}

func BoosterHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		userID := e.User().ID.String()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := b.Engine.OpenBooster(ctx, userID)
		if err != nil {
			var insufficient *gacha.InsufficientFundsError
			if errors.As(err, &insufficient) {
				return utils.EH.CreateError(e, "💸 Pas assez de koins",
					fmt.Sprintf("Il te faut **%d koins** pour un booster, tu n'en as que **%d**.",
						insufficient.Required, insufficient.Available))
			}
			return utils.EH.CreateErrorEmbed(e, "L'ouverture du booster a échoué, réessaie plus tard.")
		}
		b.CollectionService.Invalidate(userID)

		embed := discord.NewEmbedBuilder().
			SetTitle("📦 Booster ouvert !").
			SetDescription(fmt.Sprintf("-%d koins", result.Cost)).
			SetColor(config.InfoColor)

		for _, card := range result.Cards {
			var lines []string
			lines = append(lines, utils.RarityLabel(card.Card.Rarity))
			if card.Duplicate {
				lines = append(lines, fmt.Sprintf("💰 Double ! +%d koins", card.Reward))
			}
			embed.AddField(
				fmt.Sprintf("%s %s", utils.RarityEmoji(card.Card.Rarity), card.Card.Name),
				strings.Join(lines, "\n"),
				true,
			)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed.Build()},
		})
	}
}
