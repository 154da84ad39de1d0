package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/prostaff/prostaff_backend/cmd/docs"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
	"github.com/prostaff/prostaff_backend/internal/metrics"
	"github.com/prostaff/prostaff_backend/internal/middleware"
	"github.com/prostaff/prostaff_backend/internal/platform/config"
	"github.com/prostaff/prostaff_backend/internal/utils"
)

// RouteDeps carries the cross-cutting collaborators of the HTTP layer. Nil limiters disable rate limiting.
type RouteDeps struct {
	Metrics       *metrics.Metrics
	Posthog       *utils.PosthogClientWrapper
	UnlockLimiter *limiter.Limiter
	ReadLimiter   *limiter.Limiter
	HealthCheck   func(*gin.Context) error
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	r.GET("/health", func(c *gin.Context) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(c); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", "error", err.Error())
				c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	})

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	v1 := r.Group("/api/v1")

	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	resolveViewer := middleware.ViewerMiddleware(services.Viewer)

	var observer profileReadObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}
	profiles := newProfileHandler(services.ProfileAccess, observer)
	access := newAccessHandler(services.ViewQuota, deps.Posthog)

	profileGroup := v1.Group("/profiles")
	{
		unlockChain := append([]gin.HandlerFunc{requireAuth, resolveViewer}, limit(deps.UnlockLimiter)...)
		profileGroup.POST("/:profileID/unlock", append(unlockChain, access.unlockProfile)...)

		reads := profileGroup.Group("", append([]gin.HandlerFunc{optionalAuth, resolveViewer}, limit(deps.ReadLimiter)...)...)
		registerProfileReadRoutes(reads, profiles)
	}

	accessGroup := v1.Group("/access", append([]gin.HandlerFunc{requireAuth, resolveViewer}, limit(deps.ReadLimiter)...)...)
	registerAccessRoutes(accessGroup, access)
}

func limit(l *limiter.Limiter) []gin.HandlerFunc {
	if l == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(l)}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
