package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/form"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ==================== ONE-SHOT SUBMISSIONS ====================

// CreateBikeBooking handles POST /api/bike-bookings
func (h *BookingHandler) CreateBikeBooking(w http.ResponseWriter, r *http.Request) {
	var req request.BikeBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	outcome, err := h.service.SubmitBikeBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create bike booking")
		return
	}

	utils.ResponseAccepted(w, "Bike booking confirmed successfully!", outcome)
}

// CreateCabBooking handles POST /api/vehicle-bookings
func (h *BookingHandler) CreateCabBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CabBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	outcome, err := h.service.SubmitCabBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create cab booking")
		return
	}

	utils.ResponseAccepted(w, "Booking confirmed successfully!", outcome)
}

// Estimate handles POST /api/booking-estimates
func (h *BookingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req request.BookingEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	estimate, err := h.service.Estimate(&req)
	if err != nil {
		h.handleServiceError(w, err, "estimate booking cost")
		return
	}

	utils.ResponseSuccess(w, "success", estimate)
}

// ==================== FORM SESSIONS ====================

// OpenForm handles POST /api/booking-forms
func (h *BookingHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	var req request.OpenFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.OpenForm(&req)
	if err != nil {
		h.handleServiceError(w, err, "open booking form")
		return
	}

	utils.ResponseCreated(w, "success", state)
}

// UpdateForm handles PATCH /api/booking-forms/{id}
func (h *BookingHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "id")
	if formID == "" {
		utils.ResponseBadRequest(w, "Form ID is required", nil)
		return
	}

	var req request.UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.UpdateForm(formID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking form")
		return
	}

	utils.ResponseSuccess(w, "success", state)
}

// SubmitForm handles POST /api/booking-forms/{id}/submit
func (h *BookingHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "id")
	if formID == "" {
		utils.ResponseBadRequest(w, "Form ID is required", nil)
		return
	}

	// The token body is optional; submitting without one forwards an empty
	// token.
	var req request.SubmitFormRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	state, err := h.service.SubmitForm(r.Context(), formID, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit booking form")
		return
	}

	utils.ResponseAccepted(w, "Booking confirmed successfully!", state)
}

// CloseForm handles DELETE /api/booking-forms/{id}
func (h *BookingHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "id")
	if formID == "" {
		utils.ResponseBadRequest(w, "Form ID is required", nil)
		return
	}

	var req request.CloseFormRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	trigger := form.Trigger(req.Trigger)
	if req.Trigger == "" {
		trigger = form.TriggerCancel
	}

	if err := h.service.CloseForm(formID, trigger); err != nil {
		h.handleServiceError(w, err, "close booking form")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps errors for booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "missing required fields"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already in flight"):
		h.log.Warn(operation+" rejected - submission in flight",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "form is closed"):
		h.log.Warn(operation+" failed - form closed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "submit booking"):
		h.log.Error(operation+" failed upstream",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Booking failed: upstream endpoint rejected the submission")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
