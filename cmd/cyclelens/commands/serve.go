package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclelens/internal/api"
	"github.com/terraincognita07/cyclelens/internal/db"
	"github.com/terraincognita07/cyclelens/internal/services"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, change watcher and reminders",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Warn().Err(err).Msg("close database failed")
		}
	}()

	repos := db.NewRepositories(database)
	analytics := services.NewAnalyticsService(repos, cfg.AnalyticsOptions(), log.Logger)
	handler, err := api.NewHandler(api.HandlerDependencies{
		Analytics:    analytics,
		Days:         services.NewDayService(repos.DailyLogs, repos.CycleConfigs),
		Settings:     services.NewSettingsService(repos.CycleConfigs),
		SecretKey:    cfg.SecretKey,
		PasswordHash: cfg.PasswordHash,
		Location:     cfg.Location,
		Logger:       log.Logger,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "cyclelens",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: log.Logger}))
	api.RegisterRoutes(app, handler)

	watcher := services.NewChangeWatcher(repos, cfg.RefreshInterval, log.Logger)
	sender := services.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
	reminders := services.NewReminderService(repos, sender, cfg.ReminderOptions(), log.Logger)
	watcher.Subscribe(reminders.Notify)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().
			Str("port", cfg.Port).
			Str("db", cfg.DBPath).
			Str("tz", cfg.Location.String()).
			Bool("auth", cfg.SecretKey != "").
			Msg("cyclelens listening")
		return app.Listen(":" + cfg.Port)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	group.Go(func() error {
		return watcher.Run(groupCtx)
	})
	group.Go(func() error {
		return reminders.Run(groupCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("cyclelens stopped")
	return nil
}
