package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/xiaot623/support-assistant/internal/config"
	"github.com/xiaot623/support-assistant/internal/service"
)

// NewServer creates and configures the HTTP server.
func NewServer(svc *service.Service, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	if cfg.RateLimitPerMinute > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0),
				Burst: cfg.RateLimitPerMinute,
			},
		)))
	}

	// Handlers
	h := NewHandler(svc)
	h.RegisterRoutes(e)

	return e
}
