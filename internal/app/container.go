package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/brisastudio/studio-booking-backend/internal/api"
	"github.com/brisastudio/studio-booking-backend/internal/booking"
	"github.com/brisastudio/studio-booking-backend/internal/config"
	"github.com/brisastudio/studio-booking-backend/internal/notify"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	DBPool        *pgxpool.Pool
	Logger        zerolog.Logger
	Studio        *config.StudioConfig // nil means built-in catalog and hours
	WhatsAppPhone string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router  *gin.Engine
	Booking booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Static configuration: price list and weekly hours
	cat := cfg.Studio.Catalog()
	week, err := cfg.Studio.Week()
	if err != nil {
		return nil, err
	}

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, cat, week)

	// Owner notification links
	links := notify.NewWhatsApp(cfg.WhatsAppPhone)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		Catalog:        cat,
		BookingService: bookingService,
		Links:          links,
	})

	return &Container{
		Router:  router,
		Booking: bookingService,
	}, nil
}
