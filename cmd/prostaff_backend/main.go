package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/prostaff/prostaff_backend/internal/cache"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	"github.com/prostaff/prostaff_backend/internal/core/services"
	"github.com/prostaff/prostaff_backend/internal/dto"
	"github.com/prostaff/prostaff_backend/internal/handlers"
	"github.com/prostaff/prostaff_backend/internal/metrics"
	"github.com/prostaff/prostaff_backend/internal/middleware"
	"github.com/prostaff/prostaff_backend/internal/migrations"
	"github.com/prostaff/prostaff_backend/internal/platform/config"
	"github.com/prostaff/prostaff_backend/internal/repositories/database/pgsql"
	"github.com/prostaff/prostaff_backend/internal/utils"
	"github.com/prostaff/prostaff_backend/pkg/database"
)

const shutdownTimeout = 10 * time.Second

// @title ProStaff Backend API
// @version 1.0
// @description Profile access evaluation and employer view quota for the ProStaff job board.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{Ping: cfg.EnableDBCheck}, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool, logger)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if _, err := migrations.Up(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var redisClient *redis.Client
	var roleCache portsrepo.RoleCache
	if cfg.RedisAddr != "" {
		redisClient, err = cache.NewClient(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		roleCache = cache.NewRoleCache(redisClient, cfg.RoleCacheTTL)
		logger.Info("Redis role cache enabled", slog.String("addr", cfg.RedisAddr))
	}

	unlockLimiter, err := middleware.NewLimiter(cfg.RateLimitUnlock, "prostaff:rl:unlock", redisClient)
	if err != nil {
		logger.Error("Failed to create unlock rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	readLimiter, err := middleware.NewLimiter(cfg.RateLimitRead, "prostaff:rl:read", redisClient)
	if err != nil {
		logger.Error("Failed to create read rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m := metrics.New()
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), services.ContainerDeps{
		RoleCache:      roleCache,
		UnlockObserver: []services.UnlockObserver{m},
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		corsMiddleware(cfg.CORSAllowedOrigins),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.PrometheusMiddleware(m),
		middleware.PosthogMiddleware(posthogClient),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		Metrics:       m,
		Posthog:       posthogClient,
		UnlockLimiter: unlockLimiter,
		ReadLimiter:   readLimiter,
		HealthCheck: func(c *gin.Context) error {
			return dbPool.Ping(c.Request.Context())
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}
