package notifier

import "github.com/bwmarrin/discordgo"

// Sender is the narrow outbound boundary to the chat platform. Handlers
// talk to this interface so they can be exercised without a live gateway.
type Sender interface {
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
	SendText(channelID, text string) error
}
