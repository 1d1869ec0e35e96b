// internal/wire/wire.go
package wire

import (
	"net/http"

	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/catalog"
	"tourism-booking/internal/gateway"
	"tourism-booking/internal/metrics"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(store *catalog.Store, config *utils.Config, logger *zap.Logger) *App {
	metrics.Register()

	// External collaborators
	bookingsClient := gateway.NewBookingsClient(config.BookingAPI.BaseURL, config.BookingAPI.Timeout, logger)
	notifier := gateway.NewLogNotifier(logger)

	// Initialize services and handlers
	service := usecase.NewService(store, bookingsClient, notifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking)
	wireContact(r, handler.Contact)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
