package adaptor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourism-booking/internal/data/catalog"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/gateway"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRouter(api *gateway.BookingsClientMock) *chi.Mux {
	store := &catalog.Store{
		Bikes: catalog.New([]entity.Bike{
			{ID: "1", Name: "Trail Runner", Company: "Explorer Bikes", Capacity: 2, PricePerDay: 25},
		}),
		Cabs: catalog.New([]entity.Cab{
			{ID: "1", Name: "Valley Shuttle", Company: "Family Transport", Capacity: 6, PricePerDay: 60},
		}),
		Accommodations: catalog.NewNumeric([]entity.Accommodation{}),
		Cultures:       catalog.NewNumeric([]entity.CultureEntry{}),
	}
	cfg := &utils.Config{
		Form: utils.FormConfig{
			SessionTTL:     time.Hour,
			AutoCloseDelay: time.Hour, // keep sessions alive for assertions
		},
	}
	svc := usecase.NewBookingService(store, api, &gateway.NotifierMock{}, cfg, zap.NewNop())
	handler := NewBookingHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/bike-bookings", handler.CreateBikeBooking)
	r.Post("/api/vehicle-bookings", handler.CreateCabBooking)
	r.Post("/api/booking-estimates", handler.Estimate)
	r.Route("/api/booking-forms", func(r chi.Router) {
		r.Post("/", handler.OpenForm)
		r.Patch("/{id}", handler.UpdateForm)
		r.Post("/{id}/submit", handler.SubmitForm)
		r.Delete("/{id}", handler.CloseForm)
	})
	return r
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, reqBody))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestBookingHandlerOneShot(t *testing.T) {
	bikeBooking := map[string]any{
		"bike_id":      "1",
		"bookingDate":  "2024-06-01",
		"bookingTime":  "10:00",
		"name":         "Pema",
		"email":        "pema@example.com",
		"primaryPhone": "9876543210",
	}

	t.Run("Accepted", func(t *testing.T) {
		api := &gateway.BookingsClientMock{}
		router := newBookingRouter(api)

		rec, body := doJSON(t, router, http.MethodPost, "/api/bike-bookings", bikeBooking)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "PENDING", data["status"])
		assert.Equal(t, "25.00", data["total_cost"])
		assert.Equal(t, 1, api.Calls())
	})

	t.Run("ValidationFailureIs400", func(t *testing.T) {
		api := &gateway.BookingsClientMock{}
		router := newBookingRouter(api)

		incomplete := map[string]any{"bike_id": "1"}
		rec, _ := doJSON(t, router, http.MethodPost, "/api/bike-bookings", incomplete)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, api.Calls())
	})

	t.Run("UpstreamFailureIs502", func(t *testing.T) {
		api := &gateway.BookingsClientMock{Err: assert.AnError}
		router := newBookingRouter(api)

		rec, _ := doJSON(t, router, http.MethodPost, "/api/bike-bookings", bikeBooking)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("Estimate", func(t *testing.T) {
		router := newBookingRouter(&gateway.BookingsClientMock{})

		rec, body := doJSON(t, router, http.MethodPost, "/api/booking-estimates", map[string]any{
			"itemType":   "cab",
			"itemId":     "1",
			"tripType":   "ROUND_TRIP",
			"pickUpDate": "2024-06-01",
			"returnDate": "2024-06-04",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(3), data["rental_days"])
		assert.Equal(t, float64(180), data["total_cost"])
	})
}

func TestBookingHandlerFormFlow(t *testing.T) {
	api := &gateway.BookingsClientMock{}
	router := newBookingRouter(api)

	// open
	rec, body := doJSON(t, router, http.MethodPost, "/api/booking-forms", map[string]any{
		"itemType": "cab",
		"itemId":   "1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	formID := body["data"].(map[string]any)["form_id"].(string)
	require.NotEmpty(t, formID)

	// submitting the empty draft fails locally, no upstream call
	rec, _ = doJSON(t, router, http.MethodPost, "/api/booking-forms/"+formID+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, api.Calls())

	// fill the draft
	rec, body = doJSON(t, router, http.MethodPatch, "/api/booking-forms/"+formID, map[string]any{
		"pickUpLocation": "Airport",
		"dropLocation":   "Town Square",
		"pickUpDate":     "2024-06-01",
		"pickUpTime":     "09:00",
		"name":           "Tashi",
		"email":          "tashi@example.com",
		"primaryPhone":   "9876543210",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	draft := body["data"].(map[string]any)["draft"].(map[string]any)
	assert.Equal(t, float64(60), draft["totalCost"])

	// submit
	rec, body = doJSON(t, router, http.MethodPost, "/api/booking-forms/"+formID+"/submit", map[string]any{
		"recaptchaToken": "tok",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "succeeded", body["data"].(map[string]any)["state"])
	assert.Equal(t, 1, api.Calls())

	// close
	rec, _ = doJSON(t, router, http.MethodDelete, "/api/booking-forms/"+formID, map[string]any{
		"trigger": "escape",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// the session is gone
	rec, _ = doJSON(t, router, http.MethodPatch, "/api/booking-forms/"+formID, map[string]any{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
