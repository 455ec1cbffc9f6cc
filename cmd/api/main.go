package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/mrshoofer/mrshoofer/internal/pkg/config"
	"github.com/mrshoofer/mrshoofer/internal/pkg/database"
	"github.com/mrshoofer/mrshoofer/internal/pkg/health"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/middleware"
	nrpkg "github.com/mrshoofer/mrshoofer/internal/pkg/newrelic"
	nsqpkg "github.com/mrshoofer/mrshoofer/internal/pkg/nsq"
	"github.com/mrshoofer/mrshoofer/internal/pkg/server"
	"github.com/mrshoofer/mrshoofer/internal/pkg/sms"
	adminHandler "github.com/mrshoofer/mrshoofer/services/admins/handler"
	adminHTTP "github.com/mrshoofer/mrshoofer/services/admins/handler/http"
	adminRepository "github.com/mrshoofer/mrshoofer/services/admins/repository"
	adminUsecase "github.com/mrshoofer/mrshoofer/services/admins/usecase"
	driverHandler "github.com/mrshoofer/mrshoofer/services/drivers/handler"
	driverHTTP "github.com/mrshoofer/mrshoofer/services/drivers/handler/http"
	driverRepository "github.com/mrshoofer/mrshoofer/services/drivers/repository"
	driverUsecase "github.com/mrshoofer/mrshoofer/services/drivers/usecase"
	notificationGateway "github.com/mrshoofer/mrshoofer/services/notifications/gateway"
	notificationRepository "github.com/mrshoofer/mrshoofer/services/notifications/repository"
	notificationUsecase "github.com/mrshoofer/mrshoofer/services/notifications/usecase"
	passengerHandler "github.com/mrshoofer/mrshoofer/services/passengers/handler"
	passengerHTTP "github.com/mrshoofer/mrshoofer/services/passengers/handler/http"
	passengerRepository "github.com/mrshoofer/mrshoofer/services/passengers/repository"
	passengerUsecase "github.com/mrshoofer/mrshoofer/services/passengers/usecase"
	tripHandler "github.com/mrshoofer/mrshoofer/services/trips/handler"
	tripHTTP "github.com/mrshoofer/mrshoofer/services/trips/handler/http"
	tripRepository "github.com/mrshoofer/mrshoofer/services/trips/repository"
	tripUsecase "github.com/mrshoofer/mrshoofer/services/trips/usecase"
)

func main() {
	appName := "mrshoofer-api"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, appName, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// NSQ is optional; without it notifications are sent from this process
	var producer *nsqpkg.Producer
	var publisher notificationGateway.Publisher
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		publisher = producer
	}

	smsProvider, err := sms.NewProvider(configs.SMS, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create SMS provider", logger.Err(err))
	}

	// Initialize repositories
	passengerRepo := passengerRepository.NewPassengerRepo(configs, postgresClient.GetDB())
	tripRepo := tripRepository.NewTripRepo(configs, postgresClient.GetDB())
	driverRepo := driverRepository.NewDriverRepo(configs, postgresClient.GetDB())
	adminRepo := adminRepository.NewAdminRepo(configs, postgresClient.GetDB())
	notificationRepo := notificationRepository.NewNotificationRepo(configs, postgresClient.GetDB())
	otpStore := adminRepository.NewOTPStore(redisClient)

	// Initialize usecases and gateways
	notificationUC := notificationUsecase.NewNotificationUC(notificationRepo, smsProvider, configs)
	notifier := notificationGateway.NewNotifier(configs, publisher, notificationUC)
	passengerUC := passengerUsecase.NewPassengerUC(passengerRepo, configs)
	tripUC := tripUsecase.NewTripUC(tripRepo, notifier, passengerUC, configs)
	driverUC := driverUsecase.NewDriverUC(driverRepo, configs)
	adminUC := adminUsecase.NewAdminUC(adminRepo, otpStore, notificationUC, configs)

	// Handlers for HTTP
	passengers := passengerHandler.NewHandler(passengerHTTP.NewPassengerHandler(passengerUC, configs))
	trips := tripHandler.NewHandler(tripHTTP.NewTripHandler(tripUC, configs))
	drivers := driverHandler.NewHandler(driverHTTP.NewDriverHandler(driverUC, configs))
	admins := adminHandler.NewHandler(adminHTTP.NewAdminHandler(adminUC, configs))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.NewRelic(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORS())

	healthService := health.NewService(zapLogger)
	healthService.AddChecker(health.DatabaseDependency, health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	if producer != nil {
		healthService.AddChecker("nsq", health.NewNSQChecker(producer))
	}
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	adminSession := middleware.AdminJWT(configs.JWT)
	superAdmin := middleware.RequireSuperAdmin()

	// Partner API (ORS and the partner portal)
	ors := e.Group("/ORS/api", partnerChain(configs, redisClient.GetClient())...)
	trips.RegisterORSRoutes(ors)

	partner := e.Group("/api/partner", partnerChain(configs, redisClient.GetClient())...)
	partner.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "pong"})
	})
	passengers.RegisterPartnerRoutes(partner)
	trips.RegisterPartnerRoutes(partner)

	// Passenger links carry the secure token
	trips.RegisterPublicRoutes(e.Group("/api"))

	// Admin console
	authMiddleware := []echo.MiddlewareFunc{}
	if configs.RateLimit.Enabled {
		authMiddleware = append(authMiddleware,
			middleware.IPRateLimiter("auth", configs.RateLimit.Limit, configs.RateLimit.Period, redisClient.GetClient()))
	}
	admins.RegisterAuthRoutes(e.Group("/manage/api/auth", authMiddleware...))

	manage := e.Group("/manage/api", adminSession)
	trips.RegisterAdminRoutes(manage)
	drivers.RegisterAdminRoutes(manage)

	trips.RegisterSuperAdminRoutes(e.Group("/api/superadmin", adminSession, superAdmin))
	admins.RegisterAccountRoutes(e.Group("/api/admin"), adminSession, superAdmin)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(ctx context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error { return redisClient.Close() })
	if producer != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if nrApp != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}
	// Runs first: in-process notifications still in flight get to finish
	if local, ok := notifier.(*notificationGateway.LocalGW); ok {
		srv.OnShutdown(func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				local.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}
}
