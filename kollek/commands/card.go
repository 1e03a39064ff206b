package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/kollekbot/kollek/kollek"
	"github.com/kollekbot/kollek/kollek/utils"
)

const maxAutocompleteChoices = 25

var Card = discord.SlashCommandCreate{
	Name:        "carte",
	Description: "🔍 Affiche les détails d'une carte du catalogue.",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "nom",
			Description:  "Nom de la carte",
			Required:     true,
			Autocomplete: true,
		},
	},
}

func CardHandler(b *kollek.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		query := e.SlashCommandInteractionData().String("nom")

		matches := b.CardSearchService.Search(query, 1)
		if len(matches) == 0 {
			return utils.EH.CreateError(e, "🔍 Introuvable",
				fmt.Sprintf("Aucune carte ne correspond à « %s ».", query))
		}
		card := matches[0]

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		copies, err := b.CollectionRepository.CountCopies(ctx, e.User().ID.String(), card.ID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Impossible de charger les détails de la carte.")
		}

		owned := "Tu ne possèdes pas encore cette carte."
		if copies == 1 {
			owned = "Tu possèdes **1** exemplaire."
		} else if copies > 1 {
			owned = fmt.Sprintf("Tu possèdes **%d** exemplaires.", copies)
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("%s %s", utils.RarityEmoji(card.Rarity), card.Name)).
			SetDescription(owned).
			SetColor(utils.RarityColor(card.Rarity)).
			SetImage(b.ImageResolver.CardImageURL(card)).
			SetFooterText(fmt.Sprintf("Rareté : %s • Carte n°%d", utils.RarityLabel(card.Rarity), card.ID)).
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}

func CardAutocompleteHandler(b *kollek.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		focused := e.Data.Focused()
		if focused.Name != "nom" {
			return nil
		}

		var query string
		if focused.Value != nil {
			if err := json.Unmarshal(focused.Value, &query); err != nil {
				return e.AutocompleteResult([]discord.AutocompleteChoice{})
			}
		}

		choices := make([]discord.AutocompleteChoice, 0, maxAutocompleteChoices)
		if strings.TrimSpace(query) == "" {
			for _, card := range b.Catalog.All() {
				if len(choices) == maxAutocompleteChoices {
					break
				}
				choices = append(choices, discord.AutocompleteChoiceString{Name: card.Name, Value: card.Name})
			}
		} else {
			for _, card := range b.CardSearchService.Search(query, maxAutocompleteChoices) {
				choices = append(choices, discord.AutocompleteChoiceString{Name: card.Name, Value: card.Name})
			}
		}
		return e.AutocompleteResult(choices)
	}
}
