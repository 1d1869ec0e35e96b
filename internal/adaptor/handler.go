package adaptor

import (
	"tourism-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog *CatalogHandler
	Booking *BookingHandler
	Contact *ContactHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog: NewCatalogHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
		Contact: NewContactHandler(service.Contact, log),
	}
}
