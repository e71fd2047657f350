package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/savory/restaurant-service/internal/api/http"
	"github.com/savory/restaurant-service/internal/api/http/handlers"
	"github.com/savory/restaurant-service/internal/auth"
	"github.com/savory/restaurant-service/internal/config"
	"github.com/savory/restaurant-service/internal/events"
	"github.com/savory/restaurant-service/internal/observability"
	"github.com/savory/restaurant-service/internal/persistence"
	"github.com/savory/restaurant-service/internal/repository"
	"github.com/savory/restaurant-service/internal/service"
	"github.com/savory/restaurant-service/internal/worker"
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

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	if err := mongo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var revoker auth.TokenRevoker
	if redis != nil {
		revoker = auth.NewRedisRevoker(redis.Client)
	} else {
		revoker = auth.NewNoopRevoker()
	}

	opTimeout := cfg.Mongo.OpTimeout()
	userRepo := repository.NewUserRepository(mongo.Collection(persistence.CollectionUsers), opTimeout)
	menuRepo := repository.NewMenuRepository(mongo.Collection(persistence.CollectionMenuItems), opTimeout)
	orderRepo := repository.NewOrderRepository(mongo.Collection(persistence.CollectionOrders), opTimeout)
	reservationRepo := repository.NewReservationRepository(mongo.Collection(persistence.CollectionReservations), opTimeout)
	contactRepo := repository.NewContactRepository(mongo.Collection(persistence.CollectionContacts), opTimeout)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Revoker:  revoker,
	})
	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, dispatcher, logger)
	reservationService := service.NewReservationService(reservationRepo, userRepo, dispatcher, logger)
	contactService := service.NewContactService(contactRepo, dispatcher)
	seedService := service.NewSeedService(userRepo, menuRepo, cfg.Auth.BcryptCost, logger)

	guard := auth.NewMiddleware(authService.TokenManager(), userRepo, revoker)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, mongo, redis),
		Auth:         handlers.NewAuthHandler(authService),
		Profile:      handlers.NewProfileHandler(authService),
		Menu:         handlers.NewMenuHandler(menuService),
		Orders:       handlers.NewOrdersHandler(orderService),
		Reservations: handlers.NewReservationsHandler(reservationService),
		Contact:      handlers.NewContactHandler(contactService),
		Admin:        handlers.NewAdminHandler(seedService),
		Guard:        guard,
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
