package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// CreateContact handles POST /api/contacts
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SubmitContact(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "send contact message")
		return
	}

	utils.ResponseAccepted(w, "Message sent successfully! We'll contact you soon.", nil)
}

// handleServiceError maps errors for contact operations
func (h *ContactHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "missing required fields"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "submit booking"):
		h.log.Error(operation+" failed upstream",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Failed to send message. Please try again.")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
