package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/book-library/internal/config"     // rate limit configuration
	"github.com/iliyamo/book-library/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/book-library/internal/middleware" // session validation and rate limiting middleware
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems probe this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication‑related routes and applies the
// necessary middleware.  Credential endpoints live under /auth and are
// rate limited per client IP; /auth/me requires a valid session cookie.
// rdb may be nil, in which case rate limiting is disabled.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	g := e.Group("/auth")
	// Registration creates the account and establishes the first session.
	g.POST("/users", a.Register, limiter)
	// Login verifies credentials and sets a fresh session cookie.
	g.POST("/login", a.Login, limiter)
	// Lightweight probe for the presence of the session cookie.  This
	// deliberately does not validate the token; see the handler.
	g.GET("/check-cookie", a.CheckCookie)

	// Protected routes get full token validation from the session cookie.
	g.GET("/me", a.Me, middleware.SessionAuth(a.Cfg.JWTSecret))
}
