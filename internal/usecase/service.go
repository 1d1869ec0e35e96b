package usecase

import (
	"context"

	"tourism-booking/internal/data/catalog"
	"tourism-booking/internal/form"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingsAPI is the external reservations collaborator every submission is
// forwarded to. Satisfied by gateway.BookingsClient and its mock.
type BookingsAPI interface {
	SubmitBikeBooking(ctx context.Context, payload any) error
	SubmitVehicleBooking(ctx context.Context, payload any) error
	SubmitContact(ctx context.Context, payload any) error
}

type Service struct {
	Catalog CatalogService
	Booking BookingService
	Contact ContactService
}

func NewService(store *catalog.Store, api BookingsAPI, notifier form.Notifier, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(store, log),
		Booking: NewBookingService(store, api, notifier, config, log),
		Contact: NewContactService(api, notifier, log),
	}
}
