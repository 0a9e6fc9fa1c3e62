// cmd/cipher-lab-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/cipher-lab/internal/api/rest/v1"
	"github.com/MGTheTrain/cipher-lab/internal/app"
	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"
	"github.com/MGTheTrain/cipher-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/cipher-lab/internal/infrastructure/persistence"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/config"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	cipher      ciphers.CipherService
	performance algorithms.PerformanceService
	keyspace    keyspace.KeyspaceService
	analysis    analysis.AnalysisService
	session     sessions.SessionService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	// Initialize cryptographic processors
	registry, err := cryptography.NewRegistry(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize processors: %w", err)
	}
	log.Info("Cryptographic processors initialized successfully")

	// Initialize services
	services, err := initializeApplicationServices(registry, sessionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// corsConfig allows the configured origins. Credentials are only allowed for explicit origins.
func corsConfig(allowedOrigins []string) cors.Config {
	allowAll := slices.Contains(allowedOrigins, "*")

	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.cipher,
		deps.services.performance,
		deps.services.keyspace,
		deps.services.analysis,
		deps.services.session,
	)

	// Prometheus exposition
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	registry ciphers.ProcessorRegistry,
	sessionRepo sessions.SessionRepository,
	log logger.Logger,
) (*appServices, error) {
	cipherService, err := app.NewCipherService(registry, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	performanceService, err := app.NewPerformanceService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create performance service: %w", err)
	}

	keyspaceService, err := app.NewKeyspaceService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyspace service: %w", err)
	}

	analysisService, err := app.NewAnalysisService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis service: %w", err)
	}

	sessionService, err := app.NewSessionService(sessionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		cipher:      cipherService,
		performance: performanceService,
		keyspace:    keyspaceService,
		analysis:    analysisService,
		session:     sessionService,
	}, nil
}
