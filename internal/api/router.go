package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brisastudio/studio-booking-backend/internal/booking"
	bookingHttp "github.com/brisastudio/studio-booking-backend/internal/booking/http"
	"github.com/brisastudio/studio-booking-backend/internal/catalog"
	catalogHttp "github.com/brisastudio/studio-booking-backend/internal/catalog/http"
	"github.com/brisastudio/studio-booking-backend/internal/notify"
)

// Config carries everything the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string // comma-separated allowed origins in production
	Logger         zerolog.Logger
	Catalog        *catalog.Catalog
	BookingService booking.Service
	Links          *notify.WhatsApp
}

// NewRouter assembles middleware (request logging, recovery, CORS) and
// registers the public routes under /api.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	catalogHandler := catalogHttp.NewHandler(cfg.Catalog)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Links)

	api := r.Group("/api")
	{
		catalogHttp.RegisterRoutes(api, catalogHandler)
		bookingHttp.RegisterRoutes(api, bookingHandler)
	}

	return r
}
