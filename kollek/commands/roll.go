package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/kollekbot/kollek/kollek"
	"github.com/kollekbot/kollek/kollek/config"
	"github.com/kollekbot/kollek/kollek/gacha"
	"github.com/kollekbot/kollek/kollek/utils"
)

var Roll = discord.SlashCommandCreate{
	Name:        "de",
	Description: "🎲 Lance le dé et gagne des koins !",
}

func RollHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		userID := e.User().ID.String()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := b.Engine.RollDice(ctx, userID)
		if err != nil {
			var cooldown *gacha.CooldownActiveError
			if errors.As(err, &cooldown) {
				return utils.EH.CreateError(e, "⏳ Le dé se repose",
					fmt.Sprintf("Tu pourras relancer dans **%s**.", utils.FormatRemaining(cooldown.Remaining)))
			}
			return utils.EH.CreateErrorEmbed(e, "Le lancer de dé a échoué, réessaie plus tard.")
		}
		b.CollectionService.Invalidate(userID)

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("🎲 Tu as fait %d !", result.Roll)).
			SetDescription(fmt.Sprintf("+%d koins ! Tu as maintenant **%s**.", result.Payout, utils.FormatKoins(result.NewBalance))).
			SetColor(config.SuccessColor).
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
