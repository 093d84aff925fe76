package notifier

import "github.com/bwmarrin/discordgo"

// SentEmbed records one SendEmbed call.
type SentEmbed struct {
	ChannelID string
	Embed     *discordgo.MessageEmbed
}

// SentText records one SendText call.
type SentText struct {
	ChannelID string
	Text      string
}

// MemorySender records outbound messages for development and testing.
type MemorySender struct {
	Embeds []SentEmbed
	Texts  []SentText
	Err    error // returned from every call when set
}

func (m *MemorySender) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	if m.Err != nil {
		return m.Err
	}
	m.Embeds = append(m.Embeds, SentEmbed{ChannelID: channelID, Embed: embed})
	return nil
}

func (m *MemorySender) SendText(channelID, text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Texts = append(m.Texts, SentText{ChannelID: channelID, Text: text})
	return nil
}
