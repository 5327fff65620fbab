// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/vehicle-rental/internal/config"
	"github.com/iliyamo/vehicle-rental/internal/handler"
	"github.com/iliyamo/vehicle-rental/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication: the
// health check and the public fleet catalog.  Catalog reads go through the
// Redis response cache when a client is available.
func RegisterRoutes(e *echo.Echo, cat *handler.CatalogHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	pub := e.Group("/v1")
	pub.Use(middleware.NewRedisCache(cacheCfg, rdb))
	pub.GET("/vehicles", cat.ListVehicles)
	pub.GET("/vehicles/:plate", cat.GetVehicle)
	pub.GET("/fuel-prices", cat.ListFuelPrices)
}

// RegisterAuth registers the staff authentication endpoints.
// Unauthenticated operations live under /v1/auth; /v1/me requires a valid
// access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("AGENT", "ADMIN"))
	auth.GET("/me", a.Me)
}

// RegisterBooking registers the booking transaction and the record
// lookups around it.  All routes require an authenticated staff account
// and are rate limited; booking is the failure-sensitive write path, so
// the token bucket protects the store from request floods.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.NewTokenBucket(rlCfg, rdb))
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("AGENT", "ADMIN"))

	g.POST("/bookings", b.CreateBooking)
	g.GET("/vehicles/:plate/reservations", b.VehicleReservations)
	g.GET("/clients/:nif/reservations", b.ClientReservations)
	g.GET("/invoices/:id", b.GetInvoice)
}
