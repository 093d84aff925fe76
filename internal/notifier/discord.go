package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordSender sends messages through a live Discord session.
type DiscordSender struct {
	Session *discordgo.Session
}

// NewDiscordSender wraps an opened discordgo session.
func NewDiscordSender(s *discordgo.Session) *DiscordSender {
	return &DiscordSender{Session: s}
}

// SendEmbed posts a rich embed to the channel.
func (d *DiscordSender) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	if _, err := d.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("send embed: %w", err)
	}
	return nil
}

// SendText posts a plain text message to the channel.
func (d *DiscordSender) SendText(channelID, text string) error {
	if _, err := d.Session.ChannelMessageSend(channelID, text); err != nil {
		return fmt.Errorf("send text: %w", err)
	}
	return nil
}
