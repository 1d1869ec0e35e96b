package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
) {
	// ==================== BIKE ROUTES ====================
	// GET /api/bikes - List bikes (public, anyone can view)
	r.Get("/api/bikes", catalogHandler.GetBikes)

	// GET /api/bikes/{id} - Bike details with related bikes
	r.Get("/api/bikes/{id}", catalogHandler.GetBikeByID)

	// ==================== CAB ROUTES ====================
	// GET /api/cabs - List cabs (public)
	r.Get("/api/cabs", catalogHandler.GetCabs)

	// GET /api/cabs/{id} - Cab details with related cabs
	r.Get("/api/cabs/{id}", catalogHandler.GetCabByID)

	// ==================== ACCOMMODATION ROUTES ====================
	// GET /api/accommodations - List accommodations (public)
	r.Get("/api/accommodations", catalogHandler.GetAccommodations)

	// GET /api/accommodations/{id} - Accommodation details
	r.Get("/api/accommodations/{id}", catalogHandler.GetAccommodationByID)

	// ==================== CULTURE ROUTES ====================
	// GET /api/cultures - List culture entries (public)
	r.Get("/api/cultures", catalogHandler.GetCultures)

	// GET /api/cultures/{id} - Culture details with related entries
	r.Get("/api/cultures/{id}", catalogHandler.GetCultureByID)
}
