package router

import (
	"context"
	"net/http"
	"time"

	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// New builds the gin engine: global middleware, health and metrics
// endpoints, then each module's routes under /api/v1.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(httpkit.Metrics())
	engine.Use(cors.New(corsConfig(app.Config)))

	if perMinute := app.Config.GetRateLimitPerMinute(); perMinute > 0 {
		limiter := httpkit.NewPerMinuteLimiter(perMinute, app.Logger)
		engine.Use(limiter.RateLimit())
	}

	engine.GET("/api/health", func(c *gin.Context) {
		if app.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := app.Health.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", httpkit.MetricsHandler())

	v1 := engine.Group("/api/v1")
	auth := httpkit.AuthRequired(app.Config)
	protected := v1.Group("", auth)
	admin := v1.Group("/admin", auth, httpkit.RequireRole(httpkit.RoleAdmin))

	rc := &apphttp.RouterContext{
		Engine:         engine,
		V1:             v1,
		Protected:      protected,
		Admin:          admin,
		Config:         app.Config,
		AuthMiddleware: auth,
	}
	for _, m := range app.Modules {
		m.RegisterRoutes(rc)
		app.Logger.Debug("module routes registered", "module", m.Name())
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", httpkit.HeaderRequestID}
	c.ExposeHeaders = []string{httpkit.HeaderRequestID}
	if cfg.GetCORSAllowAll() {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.GetCORSOrigins()
	c.AllowCredentials = cfg.GetCORSAllowCreds()
	return c
}
