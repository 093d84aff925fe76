package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ForexSentinel/internal/collector"
	"ForexSentinel/internal/model"
	"ForexSentinel/internal/notifier"
)

func newTestBot(fetcher collector.Fetcher) (*Bot, *notifier.MemorySender) {
	sender := &notifier.MemorySender{}
	b := New("!", collector.NewCollector(fetcher), sender, "EURUSD")
	b.now = func() time.Time {
		return time.Date(2026, 3, 2, 10, 15, 30, 0, time.UTC)
	}
	return b, sender
}

func sampleBars() []model.OHLCV {
	return []model.OHLCV{
		{Time: time.Now(), Open: 1.0800, High: 1.0810, Low: 1.0795, Close: 1.0805},
		{Time: time.Now(), Open: 1.0805, High: 1.0830, Low: 1.0790, Close: 1.0820},
	}
}

func TestHandleMessage_NoPrefixIgnored(t *testing.T) {
	b, sender := newTestBot(&collector.MockFetcher{Bars: sampleBars()})

	b.HandleMessage("chan", "price EURUSD")
	b.HandleMessage("chan", "just chatting about !price")

	assert.Empty(t, sender.Embeds)
	assert.Empty(t, sender.Texts)
}

func TestHandleMessage_UnknownVerbSilent(t *testing.T) {
	b, sender := newTestBot(&collector.MockFetcher{Bars: sampleBars()})

	b.HandleMessage("chan", "!quote EURUSD")
	b.HandleMessage("chan", "!")

	assert.Empty(t, sender.Embeds)
	assert.Empty(t, sender.Texts)
}

func TestHandleMessage_DispatchesPrice(t *testing.T) {
	b, sender := newTestBot(&collector.MockFetcher{Bars: sampleBars()})

	b.HandleMessage("chan", "!price GBPUSD")

	assert.Len(t, sender.Embeds, 1)
	assert.Equal(t, "chan", sender.Embeds[0].ChannelID)
	assert.Equal(t, "📊 GBPUSD", sender.Embeds[0].Embed.Title)
}

func TestHandleMessage_ExtraWhitespace(t *testing.T) {
	b, sender := newTestBot(&collector.MockFetcher{Bars: sampleBars()})

	b.HandleMessage("chan", "  !pairs   whatever   else  ")

	assert.Len(t, sender.Embeds, 1)
	assert.Equal(t, "🌐 Major Forex Pairs", sender.Embeds[0].Embed.Title)
}
