package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
) {
	// ==================== ONE-SHOT BOOKING ROUTES ====================
	// POST /api/bike-bookings - Submit a bike rental enquiry
	r.Post("/api/bike-bookings", bookingHandler.CreateBikeBooking)

	// POST /api/vehicle-bookings - Submit a cab booking enquiry
	r.Post("/api/vehicle-bookings", bookingHandler.CreateCabBooking)

	// POST /api/booking-estimates - Derive a price without submitting
	r.Post("/api/booking-estimates", bookingHandler.Estimate)

	// ==================== FORM SESSION ROUTES ====================
	// Stateful booking forms: open, edit incrementally, submit, close
	r.Route("/api/booking-forms", func(r chi.Router) {
		// POST /api/booking-forms - Open a new form session
		r.Post("/", bookingHandler.OpenForm)

		// PATCH /api/booking-forms/{id} - Apply partial field edits
		r.Patch("/{id}", bookingHandler.UpdateForm)

		// POST /api/booking-forms/{id}/submit - Validate and forward the draft
		r.Post("/{id}/submit", bookingHandler.SubmitForm)

		// DELETE /api/booking-forms/{id} - Dismiss the form
		r.Delete("/{id}", bookingHandler.CloseForm)
	})
}
