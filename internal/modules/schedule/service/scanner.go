package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/eventloop"
	"github.com/robfig/cron/v3"
	"github.com/samber/oops"
)

// Sender delivers a text to a chat
type Sender interface {
	SendText(ctx context.Context, chatID, text string) error
}

// Submitter queues work onto the event loop
type Submitter interface {
	Submit(ctx context.Context, name string, task eventloop.Task) error
}

// ScannerConfig tunes the scanner
type ScannerConfig struct {
	Every       time.Duration
	MaxAttempts int
	// ReminderText renders a reminder body for delivery
	ReminderText func(text string) string
	Now          func() time.Time
}

// Scanner periodically delivers due items
type Scanner struct {
	svc    *Service
	sender Sender
	loop   Submitter
	cron   *cron.Cron
	cfg    ScannerConfig
	entry  cron.EntryID
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScanner(svc *Service, sender Sender, loop Submitter, c *cron.Cron, cfg ScannerConfig) *Scanner {
	if cfg.Every <= 0 {
		cfg.Every = time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.ReminderText == nil {
		cfg.ReminderText = func(text string) string { return text }
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scanner{
		svc:    svc,
		sender: sender,
		loop:   loop,
		cron:   c,
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start registers the periodic scan. Each tick queues one pass on the event loop.
func (s *Scanner) Start() error {
	id, err := s.cron.AddFunc("@every "+s.cfg.Every.String(), func() {
		if err := s.loop.Submit(s.ctx, "scan", s.Scan); err != nil {
			slog.Warn("Scan not queued", "error", err)
		}
	})
	if err != nil {
		return oops.With("every", s.cfg.Every.String(), "context", "failed to register scanner").Wrap(err)
	}
	s.entry = id
	slog.Info("Scanner started", "every", s.cfg.Every)
	return nil
}

// Stop unregisters the tick; a pass already queued still runs
func (s *Scanner) Stop() {
	s.cancel()
	if s.entry != 0 {
		s.cron.Remove(s.entry)
		s.entry = 0
	}
}

// Scan delivers every due item once. Delivered items are removed; failed
// ones stay queued until they run out of attempts.
func (s *Scanner) Scan(ctx context.Context) {
	now := s.cfg.Now()
	for _, kind := range kinds {
		for _, item := range s.svc.Due(kind, now) {
			s.deliver(ctx, item)
		}
	}
}

func (s *Scanner) deliver(ctx context.Context, item domain.Item) {
	text := item.Text
	if item.Kind == domain.ItemKindReminder {
		text = s.cfg.ReminderText(text)
	}

	if err := s.sender.SendText(ctx, item.ChatID, text); err != nil {
		dropped, ferr := s.svc.Failed(item.ID, s.cfg.MaxAttempts)
		if ferr != nil {
			slog.Error("Failed to record delivery failure", "id", item.ID, "error", ferr)
			return
		}
		slog.Error("Failed to deliver scheduled item",
			"kind", item.Kind,
			"chat_id", item.ChatID,
			"id", item.ID,
			"attempt", item.Attempts+1,
			"dropped", dropped,
			"error", err,
		)
		return
	}

	if err := s.svc.Delivered(item.ID); err != nil {
		slog.Error("Failed to remove delivered item", "id", item.ID, "error", err)
		return
	}
	slog.Info("Scheduled item delivered", "kind", item.Kind, "chat_id", item.ChatID, "id", item.ID)
}
