package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/mom-generator/errors"
	"github.com/johnquangdev/mom-generator/internal/adapter/dto/common"
	"github.com/johnquangdev/mom-generator/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg        *config.Config
	momHandler *MOM
	auth       echo.MiddlewareFunc
	metrics    http.Handler
	now        func() time.Time
}

// NewRouter creates a new router with all handlers. metrics may be nil.
func NewRouter(cfg *config.Config, momHandler *MOM, auth echo.MiddlewareFunc, metrics http.Handler) *Router {
	return &Router{
		cfg:        cfg,
		momHandler: momHandler,
		auth:       auth,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metrics), rt.metricsAuth()...)
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", rt.auth)
	api.POST("/generate", rt.momHandler.Generate)

	rt.setupStatic(e)
}

// metricsAuth guards /metrics with METRICS_TOKEN. Without a token the
// endpoint is public and should only be reachable from the internal network.
func (rt *Router) metricsAuth() []echo.MiddlewareFunc {
	if rt.cfg == nil || rt.cfg.Server.MetricsToken == "" {
		return nil
	}
	token := []byte(rt.cfg.Server.MetricsToken)
	return []echo.MiddlewareFunc{middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), token) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return errors.ErrInvalidToken(err)
		},
	})}
}

// setupStatic serves the built web client with an index.html fallback
func (rt *Router) setupStatic(e *echo.Echo) {
	if rt.cfg == nil || rt.cfg.Server.WebDistDir == "" {
		return
	}
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  rt.cfg.Server.WebDistDir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/metrics" || hasPrefix(path, "/api") || hasPrefix(path, "/swagger")
		},
	}))
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:    "healthy",
		Timestamp: rt.now().UTC().Format(time.RFC3339),
	})
}

func hasPrefix(path, prefix string) bool {
	return path == prefix || (len(path) > len(prefix) && path[:len(prefix)] == prefix && path[len(prefix)] == '/')
}
