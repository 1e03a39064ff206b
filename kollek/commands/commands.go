package commands

import (
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{
	Draw,
	Booster,
	Bonus,
	Roll,
	Collection,
	Card,
	Balance,
	Help,
}
