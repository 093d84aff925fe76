package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"ForexSentinel/internal/notifier"
	"ForexSentinel/internal/session"
)

// Scheduler posts session open/close announcements on a cron schedule.
// It is inert unless an announce channel is configured.
type Scheduler struct {
	Cron      *cron.Cron
	Sender    notifier.Sender
	ChannelID string
}

// NewScheduler creates a scheduler targeting the given channel.
func NewScheduler(sender notifier.Sender, channelID string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Sender:    sender,
		ChannelID: channelID,
	}
}

// Register adds the announcement task. The spec is expected to fire at the
// top of each hour; announcements key off the current UTC hour.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, func() {
		s.Announce(time.Now().UTC().Hour())
	}); err != nil {
		return fmt.Errorf("register session task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] session scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] session scheduler stopped")
}

// Announce posts a notice for every session opening or closing at the hour.
func (s *Scheduler) Announce(hourUTC int) {
	if s.ChannelID == "" {
		return
	}
	for _, w := range session.OpeningAt(hourUTC) {
		s.trySend(fmt.Sprintf("🔔 %s session is now *OPEN* (%02d:00 - %02d:00 UTC)", w.Name, w.Open, w.Close))
	}
	for _, w := range session.ClosingAt(hourUTC) {
		s.trySend(fmt.Sprintf("🔕 %s session is now closed", w.Name))
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Sender.SendText(s.ChannelID, text); err != nil {
		log.Printf("[ERROR] send announcement: %v", err)
	}
}
