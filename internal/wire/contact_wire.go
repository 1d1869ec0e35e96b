package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
) {
	// POST /api/contacts - Submit a contact enquiry
	r.Post("/api/contacts", contactHandler.CreateContact)
}
