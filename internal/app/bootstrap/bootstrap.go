package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	campaignservice "caritas/contexts/fundraising/campaign-service"
	campaignpostgres "caritas/contexts/fundraising/campaign-service/adapters/postgres"
	donationledger "caritas/contexts/fundraising/donation-ledger"
	donationpostgres "caritas/contexts/fundraising/donation-ledger/adapters/postgres"
	donationworkers "caritas/contexts/fundraising/donation-ledger/application/workers"
	reviewqueue "caritas/contexts/fundraising/review-queue"
	reviewpostgres "caritas/contexts/fundraising/review-queue/adapters/postgres"
	reviewworkers "caritas/contexts/fundraising/review-queue/application/workers"
	verificationservice "caritas/contexts/identity-access/verification-service"
	verificationpostgres "caritas/contexts/identity-access/verification-service/adapters/postgres"
	admindashboard "caritas/contexts/internal-ops/admin-dashboard-service"
	"caritas/contexts/internal-ops/admin-dashboard-service/adapters/memorycache"
	"caritas/internal/platform/config"
	"caritas/internal/platform/db"
	"caritas/internal/platform/httpserver"
	"caritas/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres      *db.Postgres
	donationRelay donationworkers.OutboxRelay
	reviewRelay   reviewworkers.OutboxRelay
	pollInterval  time.Duration
	logger        *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	// One cache instance for the whole process: the dashboard fills it, the
	// mutating contexts evict from it.
	cache := memorycache.NewTTLCache(cfg.AdminCacheTTL)

	campaignRepo := campaignpostgres.NewRepository(pg.DB, logger)
	campaignModule := campaignservice.NewModule(campaignservice.Dependencies{
		Campaigns: campaignRepo,
		Cache:     cache,
		Clock:     campaignpostgres.SystemClock{},
		IDGen:     campaignpostgres.UUIDGenerator{},
		Logger:    logger,
	})

	donationRepo := donationpostgres.NewRepository(pg.DB, logger)
	donationModule := donationledger.NewModule(donationledger.Dependencies{
		Donations: donationRepo,
		RefCodes:  donationpostgres.ReferenceGenerator{},
		Cache:     cache,
		Clock:     donationpostgres.SystemClock{},
		IDGen:     donationpostgres.UUIDGenerator{},
		Logger:    logger,
	})

	verificationRepo := verificationpostgres.NewRepository(pg.DB, logger)
	verificationModule := verificationservice.NewModule(verificationservice.Dependencies{
		Profiles: verificationRepo,
		Cache:    cache,
		Clock:    verificationpostgres.SystemClock{},
		Logger:   logger,
	})

	reviewRepo := reviewpostgres.NewRepository(pg.DB, logger)
	reviewModule := reviewqueue.NewModule(reviewqueue.Dependencies{
		Reviews:      reviewRepo,
		Verification: verificationGate{service: verificationModule.Service},
		Cache:        cache,
		Clock:        reviewpostgres.SystemClock{},
		IDGen:        reviewpostgres.UUIDGenerator{},
		Logger:       logger,
	})

	dashboardModule := admindashboard.NewModule(admindashboard.Dependencies{
		Campaigns: campaignSummaryReader{list: campaignModule.Handler.ListCampaigns},
		Reviews:   reviewSummaryReader{list: reviewModule.Handler.ListReviews},
		Donations: donationSummaryReader{list: donationModule.Handler.ListDonations},
		Profiles:  profileSummaryReader{service: verificationModule.Service},
		Cache:     cache,
		Logger:    logger,
	})

	server := httpserver.New(
		campaignModule,
		donationModule,
		reviewModule,
		verificationModule,
		dashboardModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	donationRepo := donationpostgres.NewRepository(pg.DB, logger)
	reviewRepo := reviewpostgres.NewRepository(pg.DB, logger)

	return &WorkerApp{
		postgres: pg,
		donationRelay: donationworkers.OutboxRelay{
			Outbox:    donationRepo,
			Publisher: bus,
			Clock:     donationpostgres.SystemClock{},
			Topic:     "notifications",
			BatchSize: 100,
			Logger:    logger,
		},
		reviewRelay: reviewworkers.OutboxRelay{
			Outbox:    reviewRepo,
			Publisher: bus,
			Clock:     reviewpostgres.SystemClock{},
			Topic:     "notifications",
			BatchSize: 100,
			Logger:    logger,
		},
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.donationRelay.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.reviewRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
