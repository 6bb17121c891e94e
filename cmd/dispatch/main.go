package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lastmile/dispatch/internal/pkg/config"
	"github.com/lastmile/dispatch/internal/pkg/database"
	"github.com/lastmile/dispatch/internal/pkg/health"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	appmiddleware "github.com/lastmile/dispatch/internal/pkg/middleware"
	nsqpkg "github.com/lastmile/dispatch/internal/pkg/nsq"
	"github.com/lastmile/dispatch/internal/pkg/observability"
	"github.com/lastmile/dispatch/internal/pkg/server"

	driverhttp "github.com/lastmile/dispatch/services/drivers/handler/http"
	driverrepo "github.com/lastmile/dispatch/services/drivers/repository"
	driveruc "github.com/lastmile/dispatch/services/drivers/usecase"

	stationhttp "github.com/lastmile/dispatch/services/stations/handler/http"
	stationrepo "github.com/lastmile/dispatch/services/stations/repository"
	stationuc "github.com/lastmile/dispatch/services/stations/usecase"

	matchgw "github.com/lastmile/dispatch/services/match/gateway"
	matchhttp "github.com/lastmile/dispatch/services/match/handler/http"
	matchrepo "github.com/lastmile/dispatch/services/match/repository"
	matchuc "github.com/lastmile/dispatch/services/match/usecase"

	drivergw "github.com/lastmile/dispatch/services/drivers/gateway"
	triphttp "github.com/lastmile/dispatch/services/trips/handler/http"
	triprepo "github.com/lastmile/dispatch/services/trips/repository"
	tripuc "github.com/lastmile/dispatch/services/trips/usecase"
)

func main() {
	appName := "dispatch-service"
	configs := config.InitConfig("config/dispatch.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	// Initialize Redis (station index, driver registry, match store)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize PostgreSQL (trip persistence)
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize NSQ producer (match notifications)
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Repositories
	stationRepo := stationrepo.NewStationRepository(redisClient)
	driverRepo := driverrepo.NewDriverRepository(configs, redisClient)
	matchRepo := matchrepo.NewMatchRepository(redisClient)
	tripRepo := triprepo.NewTripRepository(postgresClient.GetDB())

	// Replay legacy station data into the spatial index. Startup
	// continues on failure; the index fills on the next restart.
	stationUC := stationuc.NewStationUC(configs, stationRepo)
	func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := stationRepo.EnsureIndexed(ctx); err != nil {
			zapLogger.Warn("Station index migration failed", logger.Err(err))
		}
	}()

	// Usecases
	driverUC := driveruc.NewDriverUC(driverRepo, drivergw.NewStationGateway(stationUC))
	tripUC := tripuc.NewTripUC(tripRepo)

	metrics := observability.NewMatchMetrics(nil)
	matchUC := matchuc.NewMatchUC(
		matchRepo,
		matchgw.NewDriverGateway(driverUC),
		matchgw.NewStationGateway(stationUC),
		matchgw.NewTripGateway(tripUC),
		matchgw.NewNotifyGateway(producer),
		nil, // first-fit selection
		metrics,
	)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(appmiddleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(appmiddleware.RequestLoggerMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	observability.RegisterMetricsEndpoint(e)

	// Public surface. Bearer auth applies only when a secret is
	// configured; tokens come from the account service.
	var publicMW []echo.MiddlewareFunc
	if configs.JWT.Secret != "" {
		publicMW = append(publicMW, appmiddleware.JWTAuthMiddleware(configs.JWT))
	}
	driverhttp.NewDriverHandler(driverUC).RegisterRoutes(e, publicMW...)
	matchhttp.NewMatchHandler(matchUC).RegisterRoutes(e, publicMW...)

	// Internal surface for service-to-service calls
	internal := e.Group("/internal", appmiddleware.ValidateAPIKey(
		"station-service", "driver-service", "match-service", "trip-service"))
	stationhttp.NewStationHandler(stationUC).RegisterRoutes(e, internal)
	triphttp.NewTripHandler(tripUC).RegisterRoutes(internal)

	// Shutdown order: HTTP first, then the clients behind it
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)
}
