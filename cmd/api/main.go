// @title           Sauna Configurator API
// @version         1.0
// @description     사우나 제품 구성기 API (제품별 설정, 전역 설정, 구성 세션)
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/configurator

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "sauna-configurator-api/docs" // Swagger docs import

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/client"
	"sauna-configurator-api/internal/config"
	"sauna-configurator-api/internal/database"
	"sauna-configurator-api/internal/job"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/registry"
	"sauna-configurator-api/internal/repository"
	"sauna-configurator-api/internal/router"
	"sauna-configurator-api/internal/validation"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Configurator Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("catalog_url", cfg.Catalog.BaseURL),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Initialize database (연결 실패 시 백그라운드 재시도 후 라우터 구성)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("⚠️  Failed to connect to database on startup, will retry in background",
			zap.Error(err))

		connected := make(chan *gorm.DB, 1)
		database.NewAsync(ctx, dbConfig, 5*time.Second, logger, func(db *gorm.DB) {
			connected <- db
		})

		select {
		case db = <-connected:
		case <-quit:
			logger.Info("Shutdown requested before database became available")
			return
		}
	} else {
		logger.Info("Database connected successfully")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.SafeAutoMigrate(db, logger); err != nil {
		logger.Warn("Failed to run database migrations", zap.Error(err))
	} else {
		logger.Info("Database migrations completed")
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	statsDone := database.StartDBStatsCollector(db, m)
	defer close(statsDone)

	businessCollector := metrics.NewBusinessMetricsCollector(db, m, logger)
	businessCollector.Start()
	defer businessCollector.Stop()
	logger.Info("Metrics initialized")

	// Initialize Redis (선택 사항 - 없으면 인메모리 캐시 사용)
	redisClient, err := database.InitRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-process cache and settings bus", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Load product family defaults
	reg, err := registry.LoadFile(cfg.Registry.SeedFile)
	if err != nil {
		logger.Fatal("Failed to load product registry", zap.String("path", cfg.Registry.SeedFile), zap.Error(err))
	}
	logger.Info("Product registry loaded", zap.Int("families", len(reg.Families())))

	// Initialize catalog client
	var catalog client.CatalogClient
	if cfg.Catalog.BaseURL != "" {
		catalog = client.NewCatalogClient(
			cfg.Catalog.BaseURL,
			cfg.Catalog.APIToken,
			cfg.Catalog.Currency,
			cfg.Catalog.Timeout,
			logger,
			m,
		)
		logger.Info("Catalog client initialized", zap.String("catalog_url", cfg.Catalog.BaseURL))
	} else {
		catalog = client.NewNoOpCatalogClient()
		logger.Warn("Catalog base URL not configured, catalog prices disabled")
	}

	if err := validation.RegisterBindingValidators(); err != nil {
		logger.Fatal("Failed to register binding validators", zap.Error(err))
	}

	store := cache.NewStore(redisClient)
	bus := cache.NewSettingsBus(redisClient, logger)

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		Context:     ctx,
		DB:          db,
		Redis:       redisClient,
		Logger:      logger,
		BasePath:    cfg.Server.BasePath,
		Metrics:     m,
		Registry:    reg,
		Catalog:     catalog,
		Store:       store,
		Bus:         bus,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		ResolvedTTL: cfg.Redis.ResolvedTTL,
		SessionTTL:  cfg.Redis.SessionTTL,
		PriceTTL:    cfg.Redis.PriceTTL,
	})

	// Schedule catalog price refresh
	scheduler := job.NewScheduler(logger)
	if cfg.Catalog.BaseURL != "" {
		refresh := job.NewPriceRefreshJob(
			repository.NewProductConfigRepository(db),
			repository.NewAdminConfigRepository(db),
			catalog,
			cache.NewPriceCache(store, cfg.Redis.PriceTTL, m, logger),
			m,
			logger,
		)
		if err := scheduler.Add("price-refresh", cfg.Catalog.RefreshCron, refresh); err != nil {
			logger.Warn("Failed to schedule price refresh", zap.String("spec", cfg.Catalog.RefreshCron), zap.Error(err))
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Configurator Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	<-quit
	logger.Info("Shutting down server...")

	// Stop settings subscribers and websocket hub
	stop()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
