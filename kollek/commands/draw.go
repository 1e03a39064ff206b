package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/kollekbot/kollek/kollek"
	"github.com/kollekbot/kollek/kollek/gacha"
	"github.com/kollekbot/kollek/kollek/utils"
)

var Draw = discord.SlashCommandCreate{
	Name:        "pioche",
	Description: "🎴 Pioche une carte aléatoire !",
}

func DrawHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		userID := e.User().ID.String()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := b.Engine.Draw(ctx, userID)
		if err != nil {
			var cooldown *gacha.CooldownActiveError
			if errors.As(err, &cooldown) {
				return utils.EH.CreateError(e, "⏳ Pas si vite !",
					fmt.Sprintf("Tu pourras repiocher dans **%s**.", utils.FormatRemaining(cooldown.Remaining)))
			}
			return utils.EH.CreateErrorEmbed(e, "La pioche a échoué, réessaie plus tard.")
		}
		b.CollectionService.Invalidate(userID)

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{drawEmbed(b, result)},
		})
	}
}

func drawEmbed(b *kollek.Bot, result *gacha.DrawResult) discord.Embed {
	description := utils.RarityReaction(result.Card.Rarity)
	if result.Duplicate {
		description += fmt.Sprintf("\n💰 Carte en double ! +%d koins", result.Reward)
	}

	return discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("%s %s", utils.RarityEmoji(result.Card.Rarity), result.Card.Name)).
		SetDescription(description).
		SetColor(utils.RarityColor(result.Card.Rarity)).
		SetImage(b.ImageResolver.CardImageURL(result.Card)).
		SetFooterText(fmt.Sprintf("Rareté : %s", utils.RarityLabel(result.Card.Rarity))).
		Build()
}
