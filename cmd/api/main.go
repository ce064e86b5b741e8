package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/aerobook/internal/api/http"
	"github.com/spec-kit/aerobook/internal/api/http/handlers"
	"github.com/spec-kit/aerobook/internal/auth"
	"github.com/spec-kit/aerobook/internal/cache"
	"github.com/spec-kit/aerobook/internal/config"
	"github.com/spec-kit/aerobook/internal/events"
	"github.com/spec-kit/aerobook/internal/observability"
	"github.com/spec-kit/aerobook/internal/persistence"
	"github.com/spec-kit/aerobook/internal/repository"
	"github.com/spec-kit/aerobook/internal/service"
	"github.com/spec-kit/aerobook/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	enquiryRepo := repository.NewEnquiryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo: bookingRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	supportService := service.NewSupportService(service.SupportDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
		FAQs:       service.DefaultFAQs,
		Logger:     logger,
	})
	enquiryService := service.NewEnquiryService(enquiryRepo, dispatcher, logger)
	flightCache := cache.NewFlightCache(redis.Client, cfg.Redis.FlightCacheTTL())
	flightService := service.NewFlightService(service.DefaultAirlines, service.DefaultAirports, flightCache, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Profile:        handlers.NewProfileHandler(authService),
		Flights:        handlers.NewFlightsHandler(flightService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Support:        handlers.NewSupportHandler(supportService),
		Enquiry:        handlers.NewEnquiryHandler(enquiryService),
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
