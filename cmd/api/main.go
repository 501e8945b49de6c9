package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/lodger-platform/admin-service/internal/api/http"
	"github.com/lodger-platform/admin-service/internal/api/http/handlers"
	"github.com/lodger-platform/admin-service/internal/auth"
	"github.com/lodger-platform/admin-service/internal/config"
	"github.com/lodger-platform/admin-service/internal/events"
	"github.com/lodger-platform/admin-service/internal/identity"
	"github.com/lodger-platform/admin-service/internal/observability"
	"github.com/lodger-platform/admin-service/internal/persistence"
	"github.com/lodger-platform/admin-service/internal/repository"
	"github.com/lodger-platform/admin-service/internal/service"
	"github.com/lodger-platform/admin-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rd := persistence.NewRedis(cfg.Redis, logger)
	defer rd.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	seatRepo := repository.NewAdminSeatRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	leaseRepo := repository.NewLeaseRepository(pool)
	broadcastRepo := repository.NewBroadcastRepository(pool)

	provider := identity.NewPostgresProvider(pool, cfg.Auth.BcryptCost)
	dispatcher := events.NewInMemoryDispatcher()
	feed := events.NewRedisReportFeed(rd.Client, cfg.Admin.ReportFeedChannel)

	accessService := service.NewAccessService(seatRepo, cfg.Admin.SeatLimit, metrics, logger)
	authService := service.NewAuthService(*cfg, provider, accessService)
	moderationService := service.NewModerationService(cfg.Admin.SystemSenderID, service.ModerationDependencies{
		ReportRepo:  reportRepo,
		MessageRepo: messageRepo,
		Dispatcher:  dispatcher,
		Feed:        feed,
		Metrics:     metrics,
		Logger:      logger,
	})
	accountService := service.NewAccountService(service.AccountDependencies{
		UserRepo:         userRepo,
		MessageRepo:      messageRepo,
		NotificationRepo: notificationRepo,
		PropertyRepo:     propertyRepo,
		LeaseRepo:        leaseRepo,
		ReportRepo:       reportRepo,
		Provider:         provider,
		Dispatcher:       dispatcher,
		Logger:           logger,
	})
	broadcastService := service.NewBroadcastService(userRepo, notificationRepo, broadcastRepo, dispatcher, logger)
	overviewService := service.NewOverviewService(userRepo, propertyRepo, leaseRepo, reportRepo, rd.Client, cfg.Admin.StatsCacheTTL(), logger)
	alertService := service.NewAdminAlertService(logger, cfg.Admin.AlertEmail)

	if err := worker.StartReportWatcher(ctx, feed, alertService, logger); err != nil {
		logger.Warn("report watcher unavailable", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), seatRepo)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rd),
		Auth:           handlers.NewAuthHandler(authService, accessService),
		Users:          handlers.NewUsersHandler(accountService),
		Reports:        handlers.NewReportsHandler(moderationService, alertService),
		Leases:         handlers.NewLeasesHandler(leaseRepo),
		Broadcasts:     handlers.NewBroadcastHandler(broadcastService),
		Overview:       handlers.NewOverviewHandler(overviewService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
