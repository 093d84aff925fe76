package bot

import (
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"ForexSentinel/internal/collector"
	"ForexSentinel/internal/notifier"
)

// handlerFunc processes one command invocation.
type handlerFunc func(channelID string, args []string)

// Bot routes prefixed chat commands to their handlers and replies
// through the Sender boundary.
type Bot struct {
	prefix      string
	defaultPair string
	collector   *collector.Collector
	sender      notifier.Sender
	handlers    map[string]handlerFunc
	now         func() time.Time
}

// New creates the bot with its fixed five-entry dispatch table.
func New(prefix string, col *collector.Collector, sender notifier.Sender, defaultPair string) *Bot {
	b := &Bot{
		prefix:      prefix,
		defaultPair: defaultPair,
		collector:   col,
		sender:      sender,
		now:         time.Now,
	}
	b.handlers = map[string]handlerFunc{
		"price":  b.handlePrice,
		"pairs":  b.handlePairs,
		"risk":   b.handleRisk,
		"time":   b.handleTime,
		"helpme": b.handleHelp,
	}
	return b
}

// OnMessageCreate is the discordgo event callback. Messages from bots
// (including ourselves) are ignored.
func (b *Bot) OnMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	b.HandleMessage(m.ChannelID, m.Content)
}

// HandleMessage parses a raw message and dispatches it. Non-prefixed text
// and unknown verbs are ignored without a reply.
func (b *Bot) HandleMessage(channelID, content string) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, b.prefix) {
		return
	}
	fields := strings.Fields(strings.TrimPrefix(content, b.prefix))
	if len(fields) == 0 {
		return
	}
	verb, args := fields[0], fields[1:]
	handler, ok := b.handlers[verb]
	if !ok {
		log.Printf("[INFO] ignoring unknown command %q", verb)
		return
	}
	handler(channelID, args)
}

func (b *Bot) sendEmbed(channelID string, embed *discordgo.MessageEmbed) {
	if err := b.sender.SendEmbed(channelID, embed); err != nil {
		log.Printf("[ERROR] send embed: %v", err)
	}
}

func (b *Bot) sendText(channelID, text string) {
	if err := b.sender.SendText(channelID, text); err != nil {
		log.Printf("[ERROR] send text: %v", err)
	}
}
