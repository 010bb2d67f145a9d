package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/group-moderator-bot/internal/di"
	scheduleService "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/service"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/config"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/eventloop"
	httpServer "github.com/reshetovitsme/group-moderator-bot/internal/transport/http"
	"github.com/robfig/cron/v3"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Telegram and moderate chats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		return err
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return err
	}
	setupLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b, err := do.Invoke[*bot.Bot](injector)
	if err != nil {
		slog.Error("Failed to start telegram bot", "error", err)
		return err
	}

	loop := do.MustInvoke[*eventloop.Loop](injector)
	go loop.Run(context.Background())

	scanner := do.MustInvoke[*scheduleService.Scanner](injector)
	if err := scanner.Start(); err != nil {
		return err
	}
	if err := di.StartMaintenance(injector); err != nil {
		return err
	}
	do.MustInvoke[*cron.Cron](injector).Start()

	server := do.MustInvoke[*httpServer.Server](injector)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("HTTP server failed", "error", err)
			cancel()
		}
	}()

	slog.Info("Application started",
		"port", cfg.HTTPPort,
		"prefix", cfg.CommandPrefix,
		"storage", cfg.StorageBackend,
		"auth_method", cfg.AuthMethod,
	)
	slog.Info("Press Ctrl+C to stop")

	// Start blocks until ctx is done
	b.Start(ctx)

	slog.Info("Shutting down...")
	return nil
}
