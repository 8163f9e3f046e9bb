package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aidin1998/goodbye/api"
	"github.com/Aidin1998/goodbye/internal/infrastructure/config"
	"github.com/Aidin1998/goodbye/internal/infrastructure/otel"
	"github.com/Aidin1998/goodbye/internal/infrastructure/server"
	"github.com/Aidin1998/goodbye/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

//	@title			Goodbye World API
//	@version		1.0
//	@description	A minimal JSON API that says goodbye. Unknown routes answer 404 with the list of available endpoints.
//	@BasePath		/
//
//	@tag.name			System
//	@tag.description	API index
//	@tag.name			Goodbye
//	@tag.description	Goodbye messages

//go:generate swag init -d ../../ -g cmd/goodbye/main.go -o ../../docs --outputTypes go,json

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create logger
	zapLogger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
		_ = zapLogger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := otel.Setup(ctx, cfg.Otel)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			zapLogger.Warn("Failed to shut down telemetry", zap.Error(err))
		}
	}()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	apiServer := api.NewServer(zapLogger, cfg)

	httpServer, err := server.NewHTTPServer(server.HTTPServerOptions{
		Name:    "api",
		Config:  cfg.Server,
		Handler: apiServer.Router(),
		Logger:  zapLogger,
	})
	if err != nil {
		return err
	}
	servers := []*server.HTTPServer{httpServer}

	if cfg.Metrics.ListenAddress != "" {
		health := server.NewHealthChecker()
		health.RegisterHealthCheck("api", server.ListenerCheck(httpServer))

		adminServer, err := server.NewHTTPServer(server.HTTPServerOptions{
			Name:    "admin",
			Addr:    cfg.Metrics.ListenAddress,
			Config:  cfg.Server,
			Handler: api.NewAdminRouter(zapLogger, cfg.Metrics, health),
			Logger:  zapLogger,
		})
		if err != nil {
			return err
		}
		servers = append(servers, adminServer)
	}

	return server.Run(ctx, zapLogger, cfg.Server.ShutdownTimeout, servers...)
}
