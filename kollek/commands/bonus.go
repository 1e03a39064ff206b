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

var Bonus = discord.SlashCommandCreate{
	Name:        "bonus",
	Description: "🎁 Récupère ton bonus quotidien de koins !",
}

func BonusHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		userID := e.User().ID.String()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := b.Engine.ClaimBonus(ctx, userID)
		if err != nil {
			var cooldown *gacha.CooldownActiveError
			if errors.As(err, &cooldown) {
				return utils.EH.CreateError(e, "⏳ Déjà récupéré !",
					fmt.Sprintf("Ton prochain bonus sera disponible dans **%s**.", utils.FormatRemaining(cooldown.Remaining)))
			}
			return utils.EH.CreateErrorEmbed(e, "La récupération du bonus a échoué, réessaie plus tard.")
		}
		b.CollectionService.Invalidate(userID)

		return utils.EH.CreateSuccessEmbed(e,
			fmt.Sprintf("🎁 +%d koins ! Tu as maintenant **%s**.", result.Amount, utils.FormatKoins(result.NewBalance)))
	}
}
