package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "traits-backend/internal/auth"
	"traits-backend/internal/insights"
	"traits-backend/internal/profiles"
	"traits-backend/internal/shared/config"
	"traits-backend/internal/shared/metrics"
	"traits-backend/internal/shared/server/middleware"
	"traits-backend/internal/shared/server/respond"
	"traits-backend/internal/users"
)

// RouterDeps bundles the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	ProfileHandler *profiles.Handler
	InsightHandler *insights.Handler
	UserHandler    *users.Handler
	GoogleAuth     *googleauth.GoogleService
	RateLimiter    *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(rateLimitConfig(deps.RateLimiter)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}
	if deps.InsightHandler != nil {
		deps.InsightHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig throttles the analysis endpoints harder than the rest of
// the API, keyed per principal.
func rateLimitConfig(limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Limiter: limiter,
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: 2, Burst: 5},
			"WRITE":   {Rate: 5, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.Request.URL.Path
			switch {
			case strings.HasPrefix(path, "/api/v1/insights"):
				return "ANALYZE"
			case strings.HasPrefix(path, "/api/v1/profile") && c.Request.Method != http.MethodGet:
				return "WRITE"
			default:
				return ""
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
