package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/client"
	"sauna-configurator-api/internal/handler"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/middleware"
	"sauna-configurator-api/internal/registry"
	"sauna-configurator-api/internal/repository"
	"sauna-configurator-api/internal/resolver"
	"sauna-configurator-api/internal/service"
)

// Config holds the dependencies of the HTTP router
type Config struct {
	// Context bounds the settings subscribers started by Setup
	Context     context.Context
	DB          *gorm.DB
	Redis       *redis.Client
	Logger      *zap.Logger
	BasePath    string
	Metrics     *metrics.Metrics
	Registry    *registry.Registry
	Catalog     client.CatalogClient
	// Store and Bus default to redis backed instances, or in-process ones when Redis is nil
	Store       cache.Store
	Bus         cache.SettingsBus
	CORSOrigins []string
	ResolvedTTL time.Duration
	SessionTTL  time.Duration
	PriceTTL    time.Duration
}

// Setup creates the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = registry.Default()
	}
	bus := cfg.Bus
	if bus == nil {
		bus = cache.NewSettingsBus(cfg.Redis, logger)
	}

	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Caches
	store := cfg.Store
	if store == nil {
		store = cache.NewStore(cfg.Redis)
	}
	resolvedCache := cache.NewResolvedCache(store, cfg.ResolvedTTL, cfg.Metrics, logger)
	priceCache := cache.NewPriceCache(store, cfg.PriceTTL, cfg.Metrics, logger)
	sessionStore := cache.NewSessionStore(store, cfg.SessionTTL)

	// Repositories
	productConfigRepo := repository.NewProductConfigRepository(cfg.DB)
	adminConfigRepo := repository.NewAdminConfigRepository(cfg.DB)

	// Services
	productConfigService := service.NewProductConfigService(productConfigRepo, reg, cfg.Metrics, logger)
	globalSettingsService := service.NewGlobalSettingsService(adminConfigRepo, bus, cfg.Metrics, logger)
	configuratorService := service.NewConfiguratorService(service.ConfiguratorDeps{
		Products: productConfigService,
		Settings: globalSettingsService,
		Registry: reg,
		Engine:   resolver.NewEngine(logger),
		Resolved: resolvedCache,
		Prices:   priceCache,
		Catalog:  cfg.Catalog,
		Metrics:  cfg.Metrics,
		Logger:   logger,
	})
	selectionService := service.NewSelectionService(sessionStore, configuratorService, cfg.Metrics, logger)

	go globalSettingsService.Watch(ctx, bus.Subscribe(ctx))

	settingsHub := handler.NewSettingsHub(cfg.Metrics, logger)
	go settingsHub.Run(ctx, bus.Subscribe(ctx))

	// Handlers
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)
	adminHandler := handler.NewAdminHandler(productConfigService, globalSettingsService, reg, logger)
	configuratorHandler := handler.NewConfiguratorHandler(configuratorService, selectionService, logger)
	settingsWSHandler := handler.NewSettingsWSHandler(settingsHub, globalSettingsService, logger)

	// Root level probes and metrics
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		if cfg.BasePath != "" && cfg.BasePath != "/" {
			api.GET("/health", healthHandler.Health)
			api.GET("/ready", healthHandler.Ready)
			api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		}

		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.GET("/products", adminHandler.ListProductConfigs)
			admin.GET("/products/:productId", adminHandler.GetProductConfig)
			admin.PUT("/products/:productId", adminHandler.ReplaceProductConfig)
			admin.PATCH("/products/:productId", adminHandler.PatchProductConfig)
			admin.DELETE("/products/:productId", adminHandler.DeleteProductConfig)

			admin.GET("/global-settings", adminHandler.GetGlobalSettings)
			admin.PUT("/global-settings", adminHandler.ReplaceGlobalSettings)
			admin.PATCH("/global-settings", adminHandler.PatchGlobalSettings)

			admin.GET("/registry/:family", adminHandler.GetRegistry)
		}

		// Customer routes
		api.GET("/products/:productId/config", configuratorHandler.GetResolvedConfig)
		api.GET("/products/:productId/heater-stones", configuratorHandler.GetHeaterStones)
		api.GET("/products/:productId/prices", configuratorHandler.GetProductPrices)

		sessions := api.Group("/sessions")
		{
			sessions.POST("", configuratorHandler.CreateSession)
			sessions.GET("/:sessionId", configuratorHandler.GetSession)
			sessions.PATCH("/:sessionId", configuratorHandler.PatchSession)
			sessions.PUT("/:sessionId/steps/:stepId", configuratorHandler.UpdateSelection)
			sessions.POST("/:sessionId/steps/:stepId/toggle", configuratorHandler.ToggleOption)
			sessions.DELETE("/:sessionId/selections", configuratorHandler.ClearSelections)
			sessions.GET("/:sessionId/progress", configuratorHandler.GetProgress)
			sessions.GET("/:sessionId/prices", configuratorHandler.GetSessionPrices)
		}

		api.GET("/settings/ws", settingsWSHandler.HandleSettingsWebSocket)
	}

	return r
}
