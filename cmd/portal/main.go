package main

import (
	"log"
	"time"

	"github.com/dealerhub/portal/internal/pkg/config"
	"github.com/dealerhub/portal/internal/pkg/database"
	"github.com/dealerhub/portal/internal/pkg/health"
	"github.com/dealerhub/portal/internal/pkg/logger"
	natspkg "github.com/dealerhub/portal/internal/pkg/nats"
	nrpkg "github.com/dealerhub/portal/internal/pkg/newrelic"
	"github.com/dealerhub/portal/internal/pkg/server"
	catalogGatewayHTTP "github.com/dealerhub/portal/services/catalog/gateway/http"
	catalogHandler "github.com/dealerhub/portal/services/catalog/handler"
	catalogHTTP "github.com/dealerhub/portal/services/catalog/handler/http"
	"github.com/dealerhub/portal/services/session"
	"github.com/dealerhub/portal/services/session/gateway"
	sessionHandler "github.com/dealerhub/portal/services/session/handler"
	sessionHTTP "github.com/dealerhub/portal/services/session/handler/http"
	"github.com/dealerhub/portal/services/session/repository"
	"github.com/dealerhub/portal/services/session/usecase"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	appName := "dealerhub-portal"
	configs := config.InitConfig("config/portal.env")

	// Initialize New Relic and the Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	if configs.Session.Secret == "" {
		zapLogger.Fatal("SESSION_SECRET must be configured")
	}

	// Session store: Redis when configured, in-memory otherwise
	var store session.SessionStore
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		store = repository.NewSessionRepo(configs, redisClient)
	} else {
		zapLogger.Warn("No Redis configured, using in-memory session store")
		store = repository.NewMemorySessionStore()
	}

	// NATS audit bus is optional
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsClient.Close()
	}

	// Gateways
	sessionGW := gateway.NewSessionGW(natsClient, configs.AuthBackend)
	backendGW := catalogGatewayHTTP.NewBackendClient(configs.AuthBackend)

	// UseCase
	sessionUC := usecase.NewSessionManager(store, sessionGW)

	// Handlers
	sessHandler := sessionHTTP.NewSessionHandler(sessionUC)
	catHandler := catalogHTTP.NewCatalogHandler(sessionUC, backendGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestID())
	e.Use(nrpkg.TransactionMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.Recover())

	health.RegisterHealthEndpoints(e, appName)

	sessionHandler.NewHandler(sessHandler, sessionUC, configs).RegisterRoutes(e)
	catalogHandler.NewHandler(catHandler, sessionUC, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
	}
}
