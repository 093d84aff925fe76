package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"ForexSentinel/internal/bot"
	"ForexSentinel/internal/collector"
	"ForexSentinel/internal/config"
	"ForexSentinel/internal/notifier"
	"ForexSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ForexSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("MOCK_DATA") == "true" {
		fetcher = &collector.MockFetcher{}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher)

	// Init Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.BotToken)
	if err != nil {
		log.Fatalf("[FATAL] create discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	sender := notifier.NewDiscordSender(dg)
	b := bot.New(cfg.Discord.CommandPrefix, col, sender, cfg.DataSource.DefaultPair)

	dg.AddHandler(b.OnMessageCreate)
	dg.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Printf("[INFO] logged in as %s#%s", r.User.Username, r.User.Discriminator)
	})

	if err := dg.Open(); err != nil {
		log.Fatalf("[FATAL] open discord gateway: %v", err)
	}
	defer dg.Close()

	// Session open/close announcements, only when a channel is configured
	if cfg.Discord.AnnounceChannelID != "" {
		sched := scheduler.NewScheduler(sender, cfg.Discord.AnnounceChannelID)
		if err := sched.Register(cfg.Schedule.SessionCron); err != nil {
			log.Fatalf("[FATAL] register session task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	log.Println("[INFO] ForexSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}
