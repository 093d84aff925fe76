package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"ForexSentinel/internal/calculator"
	"ForexSentinel/internal/model"
	"ForexSentinel/internal/session"
)

const (
	colorUp    = 0x00ff00
	colorDown  = 0xff0000
	colorPairs = 0x3498db
	colorRisk  = 0xe74c3c
	colorTime  = 0x9b59b6
	colorHelp  = 0xf1c40f
)

var sessionFlags = map[string]string{
	"Tokyo":    "🇯🇵",
	"London":   "🇬🇧",
	"New York": "🇺🇸",
}

// handlePrice fetches a live quote and renders it. With no argument the
// configured default pair is quoted.
func (b *Bot) handlePrice(channelID string, args []string) {
	pair := b.defaultPair
	if len(args) > 0 {
		pair = args[0]
	}

	sum, err := b.collector.Quote(pair)
	if errors.Is(err, model.ErrNoData) {
		b.sendText(channelID, fmt.Sprintf("❌ Could not fetch data for %s", pair))
		return
	}
	if err != nil {
		// Full detail goes to the log only; the channel gets a generic hint.
		log.Printf("[ERROR] price %s: %v", pair, err)
		b.sendText(channelID, "❌ Error: Check pair format (e.g., EURUSD, GBPUSD)")
		return
	}

	color := colorUp
	if sum.Change < 0 {
		color = colorDown
	}
	now := b.now()
	b.sendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       "📊 " + strings.ToUpper(pair),
		Description: fmt.Sprintf("*Live Price: $%.5f*", sum.CurrentPrice),
		Color:       color,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📈 Daily High", Value: fmt.Sprintf("$%.5f", sum.DailyHigh), Inline: true},
			{Name: "📉 Daily Low", Value: fmt.Sprintf("$%.5f", sum.DailyLow), Inline: true},
			{Name: "🔄 Change", Value: fmt.Sprintf("%.5f (%.2f%%)", sum.Change, sum.ChangePercent), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Data from Yahoo Finance • %s", now.Format("15:04:05")),
		},
	})
}

// handlePairs renders the fixed major-pairs reference list.
func (b *Bot) handlePairs(channelID string, _ []string) {
	fields := make([]*discordgo.MessageEmbedField, 0, len(model.MajorPairs))
	for _, p := range model.MajorPairs {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  p.Code,
			Value: p.DisplayName,
		})
	}
	b.sendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       "🌐 Major Forex Pairs",
		Description: "Most traded currency pairs",
		Color:       colorPairs,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Use: %sprice EURUSD (no slash)", b.prefix),
		},
	})
}

// handleRisk parses four numeric arguments and renders the position sizing.
func (b *Bot) handleRisk(channelID string, args []string) {
	if len(args) < 4 {
		b.sendText(channelID, b.riskUsage())
		return
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			b.sendText(channelID, b.riskUsage())
			return
		}
		vals[i] = v
	}

	in := model.RiskInput{
		AccountBalance: vals[0],
		RiskPercent:    vals[1],
		EntryPrice:     vals[2],
		StopLossPrice:  vals[3],
	}
	res := calculator.CalculatePosition(in)

	b.sendEmbed(channelID, &discordgo.MessageEmbed{
		Title: "🎯 Risk Management Calculator",
		Color: colorRisk,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💰 Account Balance", Value: "$" + humanize.FormatFloat("#,###.##", in.AccountBalance)},
			{Name: "⚠️ Risk %", Value: fmt.Sprintf("%g%%", in.RiskPercent), Inline: true},
			{Name: "💸 Risk Amount", Value: fmt.Sprintf("$%.2f", res.RiskAmount), Inline: true},
			{Name: "📏 Pips at Risk", Value: fmt.Sprintf("%.1f", res.PipsAtRisk), Inline: true},
			{Name: "💎 Pip Value", Value: fmt.Sprintf("$%.2f", res.PipValue), Inline: true},
			{Name: "📦 Position Size", Value: fmt.Sprintf("%.2f lots", res.PositionSizeLots), Inline: true},
		},
	})
}

func (b *Bot) riskUsage() string {
	return fmt.Sprintf("❌ Usage: %srisk <balance> <risk%%> <entry> <stop-loss> — all four must be numbers", b.prefix)
}

// handleTime renders the open/closed state of each trading session.
func (b *Bot) handleTime(channelID string, _ []string) {
	now := b.now().UTC()
	fields := make([]*discordgo.MessageEmbedField, 0, len(session.Windows))
	for _, s := range session.StatusAt(now) {
		status := "❌ Closed"
		if s.Active {
			status = "✅ *OPEN*"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", sessionFlags[s.Name], s.Name),
			Value:  fmt.Sprintf("%s\n%02d:00 - %02d:00 UTC", status, s.Open, s.Close),
			Inline: true,
		})
	}
	b.sendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       "🕒 Forex Trading Sessions",
		Description: fmt.Sprintf("Current UTC Time: %s", now.Format("15:04")),
		Color:       colorTime,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Most volatility: 08:00-12:00 & 13:00-17:00 UTC",
		},
	})
}

// handleHelp renders the command list with two usage examples.
func (b *Bot) handleHelp(channelID string, _ []string) {
	commands := []struct {
		sig  string
		desc string
	}{
		{"price [pair]", "Live price (default: " + b.defaultPair + ")"},
		{"pairs", "List major forex pairs"},
		{"risk [balance] [risk%] [entry] [SL]", "Position size calculator"},
		{"time", "Check trading sessions"},
		{"helpme", "This help message"},
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(commands)+1)
	for _, c := range commands {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  b.prefix + c.sig,
			Value: c.desc,
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  "💡 Examples",
		Value: fmt.Sprintf("`%sprice GBPUSD`\n`%srisk 5000 2 1.2650 1.2600`", b.prefix, b.prefix),
	})

	b.sendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       "🆘 Forex Bot Commands",
		Description: "Your personal trading assistant",
		Color:       colorHelp,
		Fields:      fields,
	})
}
