package adaptor

import (
	"net/http"
	"strings"

	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetBikes handles GET /api/bikes
func (h *CatalogHandler) GetBikes(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListBikes())
}

// GetBikeByID handles GET /api/bikes/{id}
func (h *CatalogHandler) GetBikeByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Bike ID is required", nil)
		return
	}

	bike, err := h.service.GetBike(id)
	if err != nil {
		h.handleServiceError(w, err, "get bike by ID")
		return
	}

	utils.ResponseSuccess(w, "success", bike)
}

// GetCabs handles GET /api/cabs
func (h *CatalogHandler) GetCabs(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListCabs())
}

// GetCabByID handles GET /api/cabs/{id}
func (h *CatalogHandler) GetCabByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Cab ID is required", nil)
		return
	}

	cab, err := h.service.GetCab(id)
	if err != nil {
		h.handleServiceError(w, err, "get cab by ID")
		return
	}

	utils.ResponseSuccess(w, "success", cab)
}

// GetAccommodations handles GET /api/accommodations
func (h *CatalogHandler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListAccommodations())
}

// GetAccommodationByID handles GET /api/accommodations/{id}
func (h *CatalogHandler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Accommodation ID is required", nil)
		return
	}

	stay, err := h.service.GetAccommodation(id)
	if err != nil {
		h.handleServiceError(w, err, "get accommodation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", stay)
}

// GetCultures handles GET /api/cultures
func (h *CatalogHandler) GetCultures(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListCultures())
}

// GetCultureByID handles GET /api/cultures/{id}
func (h *CatalogHandler) GetCultureByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Culture ID is required", nil)
		return
	}

	culture, err := h.service.GetCulture(id)
	if err != nil {
		h.handleServiceError(w, err, "get culture by ID")
		return
	}

	utils.ResponseSuccess(w, "success", culture)
}

// handleServiceError maps lookup failures for catalog operations
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
