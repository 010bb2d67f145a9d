package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	chatRepo "github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/repository"
	chatService "github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/service"
	commandService "github.com/reshetovitsme/group-moderator-bot/internal/modules/command/service"
	feedService "github.com/reshetovitsme/group-moderator-bot/internal/modules/feed/service"
	moderationRepo "github.com/reshetovitsme/group-moderator-bot/internal/modules/moderation/repository"
	moderationService "github.com/reshetovitsme/group-moderator-bot/internal/modules/moderation/service"
	pollRepo "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/repository"
	pollService "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/service"
	scheduleRepo "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/repository"
	scheduleService "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/service"
	sessionService "github.com/reshetovitsme/group-moderator-bot/internal/modules/session/service"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/config"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/eventloop"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/locale"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
	httpServer "github.com/reshetovitsme/group-moderator-bot/internal/transport/http"
	"github.com/reshetovitsme/group-moderator-bot/internal/transport/telegram"
	"github.com/robfig/cron/v3"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container. Providers are lazy:
// offline commands only build the state stores, never the bot.
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Storage Backend
	do.Provide(injector, func(i do.Injector) (storage.Backend, error) {
		cfg := do.MustInvoke[*config.Config](i)
		path := cfg.StoragePath
		if cfg.StorageBackend == storage.KindSqlite {
			path = cfg.SQLitePath()
		}
		backend, err := storage.Open(cfg.StorageBackend, path)
		if err != nil {
			return nil, oops.With("storage_backend", cfg.StorageBackend, "storage_path", path, "context", "failed to open storage").Wrap(err)
		}
		slog.Info("Storage opened", "backend", cfg.StorageBackend, "path", path)
		return backend, nil
	})

	// Register State Stores
	do.Provide(injector, func(i do.Injector) (*chatService.Service, error) {
		backend := do.MustInvoke[storage.Backend](i)
		return chatService.New(chatRepo.New(backend)), nil
	})

	do.Provide(injector, func(i do.Injector) (*moderationService.Warnings, error) {
		cfg := do.MustInvoke[*config.Config](i)
		backend := do.MustInvoke[storage.Backend](i)
		return moderationService.NewWarnings(moderationRepo.New(backend), cfg.MaxWarnings), nil
	})

	do.Provide(injector, func(i do.Injector) (*moderationService.RateLimiter, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return moderationService.NewRateLimiter(cfg.RateWindow(), cfg.RateLimitMax), nil
	})

	do.Provide(injector, func(i do.Injector) (*scheduleService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		backend := do.MustInvoke[storage.Backend](i)
		return scheduleService.New(scheduleRepo.New(backend), cfg.Location()), nil
	})

	do.Provide(injector, func(i do.Injector) (*pollService.Service, error) {
		backend := do.MustInvoke[storage.Backend](i)
		return pollService.New(pollRepo.New(backend)), nil
	})

	do.Provide(injector, func(i do.Injector) (*sessionService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return sessionService.New(cfg.AuthMethod, cfg.PairingPhone, nil), nil
	})

	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		schedule := do.MustInvoke[*scheduleService.Service](i)
		return feedService.New(schedule, nil), nil
	})

	do.Provide(injector, func(i do.Injector) (*locale.Translator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return locale.New(cfg.Language), nil
	})

	// Register Flusher
	do.Provide(injector, func(i do.Injector) (*storage.Flusher, error) {
		f := storage.NewFlusher()
		f.Register("groups", do.MustInvoke[*chatService.Service](i))
		f.Register("warnings", do.MustInvoke[*moderationService.Warnings](i))
		f.Register("schedule", do.MustInvoke[*scheduleService.Service](i))
		f.Register("polls", do.MustInvoke[*pollService.Service](i))
		return f, nil
	})

	// Register Event Loop and Cron
	do.Provide(injector, func(i do.Injector) (*eventloop.Loop, error) {
		return eventloop.New(0), nil
	})

	do.Provide(injector, func(i do.Injector) (*cron.Cron, error) {
		logger := cronLogger{slog.Default()}
		return cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		), nil
	})

	// Register Telegram Client
	do.Provide(injector, func(i do.Injector) (*telegram.Client, error) {
		return telegram.NewClient(), nil
	})

	// Register Command Dispatcher
	do.Provide(injector, func(i do.Injector) (*commandService.Dispatcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return commandService.New(commandService.Config{
			Prefix:             cfg.CommandPrefix,
			AdminCommands:      cfg.AdminCommands,
			DefaultMuteMinutes: cfg.DefaultMuteMinutes,
			MaxCleanMessages:   cfg.MaxCleanMessages,
			CleanupAfter:       cfg.CleanupAfter(),
			InactiveAfter:      cfg.InactiveAfter(),
		}, commandService.Deps{
			Client:   do.MustInvoke[*telegram.Client](i),
			Chats:    do.MustInvoke[*chatService.Service](i),
			Warnings: do.MustInvoke[*moderationService.Warnings](i),
			Limiter:  do.MustInvoke[*moderationService.RateLimiter](i),
			Schedule: do.MustInvoke[*scheduleService.Service](i),
			Polls:    do.MustInvoke[*pollService.Service](i),
			Session:  do.MustInvoke[*sessionService.Service](i),
			Locale:   do.MustInvoke[*locale.Translator](i),
		}), nil
	})

	// Register Scanner
	do.Provide(injector, func(i do.Injector) (*scheduleService.Scanner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		tr := do.MustInvoke[*locale.Translator](i)
		return scheduleService.NewScanner(
			do.MustInvoke[*scheduleService.Service](i),
			do.MustInvoke[*telegram.Client](i),
			do.MustInvoke[*eventloop.Loop](i),
			do.MustInvoke[*cron.Cron](i),
			scheduleService.ScannerConfig{
				Every:       cfg.ScanEvery(),
				MaxAttempts: cfg.MaxDeliveryAttempts,
				ReminderText: func(text string) string {
					return tr.T(locale.MsgReminder, map[string]any{"Text": text})
				},
			},
		), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegram.Handler, error) {
		return telegram.New(
			do.MustInvoke[*telegram.Client](i),
			do.MustInvoke[*commandService.Dispatcher](i),
			do.MustInvoke[*eventloop.Loop](i),
		), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		server := httpServer.New(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*sessionService.Service](i),
			do.MustInvoke[*scheduleService.Service](i),
			do.MustInvoke[*pollService.Service](i),
			do.MustInvoke[*chatService.Service](i),
			do.MustInvoke[*feedService.Service](i),
		)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (needs to be initialized after handlers are ready)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		handler := do.MustInvoke[*telegram.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(handler.HandleUpdate),
			bot.WithServerURL(cfg.TelegramAPIURL),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Set bot in the client adapter
		do.MustInvoke[*telegram.Client](i).SetBot(b)
		do.MustInvoke[*sessionService.Service](i).SetReady(true)

		return b, nil
	})

	return injector, nil
}

// StartMaintenance registers the periodic flush and rate-limit pruning. Both
// run on the event loop like every other state mutation.
func StartMaintenance(injector do.Injector) error {
	cfg := do.MustInvoke[*config.Config](injector)
	c := do.MustInvoke[*cron.Cron](injector)
	loop := do.MustInvoke[*eventloop.Loop](injector)
	flusher := do.MustInvoke[*storage.Flusher](injector)
	limiter := do.MustInvoke[*moderationService.RateLimiter](injector)

	_, err := c.AddFunc("@every "+cfg.FlushEvery().String(), func() {
		err := loop.Submit(context.Background(), "maintenance", func(context.Context) {
			if err := flusher.FlushAll(); err != nil {
				slog.Error("Periodic flush failed", "error", err)
			}
			if pruned := limiter.Prune(time.Now()); pruned > 0 {
				slog.Debug("Pruned rate limit windows", "count", pruned)
			}
		})
		if err != nil {
			slog.Warn("Maintenance not queued", "error", err)
		}
	})
	if err != nil {
		return oops.With("every", cfg.FlushEvery().String(), "context", "failed to register maintenance").Wrap(err)
	}
	return nil
}

// Shutdown stops the timers, drains the event loop, persists the state and
// closes the backend
func Shutdown(injector do.Injector) error {
	if scanner, err := do.Invoke[*scheduleService.Scanner](injector); err == nil {
		scanner.Stop()
	}

	if c, err := do.Invoke[*cron.Cron](injector); err == nil {
		<-c.Stop().Done()
	}

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("HTTP server shutdown failed", "error", err)
		}
		cancel()
	}

	if loop, err := do.Invoke[*eventloop.Loop](injector); err == nil {
		loop.Close()
	}

	var flushErr error
	if flusher, err := do.Invoke[*storage.Flusher](injector); err == nil {
		flushErr = flusher.FlushAll()
	}

	if backend, err := do.Invoke[storage.Backend](injector); err == nil {
		if err := backend.Close(); err != nil {
			return oops.With("context", "failed to close storage").Wrap(err)
		}
	}

	return flushErr
}
