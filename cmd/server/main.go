package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-rental/internal/booking"
	"github.com/iliyamo/vehicle-rental/internal/config"
	"github.com/iliyamo/vehicle-rental/internal/database"
	"github.com/iliyamo/vehicle-rental/internal/handler"
	"github.com/iliyamo/vehicle-rental/internal/queue"
	"github.com/iliyamo/vehicle-rental/internal/repository"
	"github.com/iliyamo/vehicle-rental/internal/router"
	queue_publisher "github.com/iliyamo/vehicle-rental/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// Repositories
	clients := repository.NewClientRepo(db)
	vehicles := repository.NewVehicleRepo(db)
	reservations := repository.NewReservationRepo(db)
	invoices := repository.NewInvoiceRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Booking service with the DB handle injected; the transaction
	// boundary lives there, not in the handlers.
	bookings := booking.NewService(db, clients, vehicles, reservations, invoices, queue_publisher.Publisher{})

	// Redis is optional; rate limiting and response caching degrade to
	// no-ops when it is absent.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e, handler.NewCatalogHandler(vehicles), config.LoadCacheConfig(), rdb)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterBooking(e,
		handler.NewBookingHandler(bookings, clients, reservations, invoices),
		cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	// Background consumer appends confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
