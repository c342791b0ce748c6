package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"lead_dashboard/internal/config"
	"lead_dashboard/internal/poller"
	"lead_dashboard/internal/publisher"
	"lead_dashboard/internal/service"
	"lead_dashboard/internal/source/leads"
	"lead_dashboard/internal/storage/postgres"
	"lead_dashboard/internal/view"
)

const healthTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	loc, err := cfg.View.Location()
	if err != nil {
		logger.Error("invalid timezone", "error", err)
		os.Exit(1)
	}

	tab, err := view.ParseTab(cfg.View.DefaultTab)
	if err != nil {
		logger.Warn("unknown default tab, using dashboard", "tab", cfg.View.DefaultTab)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := leads.New(leads.Config{
		BaseURL: cfg.Backend.BaseURL,
		APIKey:  cfg.Backend.APIKey,
		Timeout: cfg.Backend.Timeout,
	}, logger)

	renderer := view.NewRenderer(os.Stdout, view.Settings{
		BackendURL:       client.BaseURL(),
		APIKey:           cfg.Backend.APIKey,
		Interval:         cfg.Poll.Interval,
		ArchiveEnabled:   cfg.Archive.Enabled,
		PublisherEnabled: cfg.Archive.Enabled && cfg.RabbitMQ.Enabled,
	}, view.WithLocation(loc), view.WithClearScreen(cfg.View.ClearScreen), view.WithTab(tab))

	go probeHealth(ctx, client, renderer, logger)

	store := service.NewLeadStore(client, logger, renderer)

	if cfg.Archive.Enabled {
		closeArchive, err := startArchive(ctx, cfg, client.BaseURL(), store, logger)
		if err != nil {
			logger.Error("failed to start archive", "error", err)
			os.Exit(1)
		}
		defer closeArchive()
	} else if cfg.RabbitMQ.Enabled {
		logger.Warn("rabbitmq is enabled but archive is not; lead events are published by the archive only")
	}

	p := poller.New(store, cfg.Poll.Interval, logger)

	go readCommands(ctx, os.Stdin, p, renderer, cancel, logger)

	renderSnapshot(renderer, store.Snapshot(), logger)

	logger.Info("starting lead dashboard",
		"backend", client.BaseURL(),
		"interval", cfg.Poll.Interval,
		"archive", cfg.Archive.Enabled,
	)

	if err := p.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("poller error", "error", err)
		os.Exit(1)
	}
}

func probeHealth(ctx context.Context, client *leads.Client, renderer *view.Renderer, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil {
		logger.Warn("backend health check failed", "error", err)
		return
	}
	renderer.SetHealth(health)
	logger.Info("backend health", "status", health.Status, "version", health.Version)
}

// startArchive connects the archive database and, when enabled, RabbitMQ, and
// subscribes the archive service to the store.
func startArchive(
	ctx context.Context,
	cfg *config.Config,
	backend string,
	store *service.LeadStore,
	logger *slog.Logger,
) (func(), error) {
	db, err := sqlx.Connect("postgres", cfg.Archive.Database.DSN())
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	closers := []func(){func() { db.Close() }}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			closeAll()
			return nil, err
		}
		closers = append(closers, func() { rabbitMQ.Close() })
		pub = rabbitMQ
	}

	archive := service.NewArchiveService(
		backend,
		postgres.NewLeadArchive(db),
		postgres.NewArchiveStateStore(db),
		postgres.NewTransactionManager(db),
		pub,
		logger,
	)
	store.Subscribe(archive)

	go func() {
		if err := archive.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("archive stopped", "error", err)
		}
	}()

	return closeAll, nil
}

// setupLogger writes to stderr so the dashboard owns stdout.
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
