package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"tourism-booking/internal/data/catalog"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/form"
	"tourism-booking/internal/gateway"
	"tourism-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStore() *catalog.Store {
	return &catalog.Store{
		Bikes: catalog.New([]entity.Bike{
			{ID: "1", Name: "Trail Runner", Company: "Explorer Bikes", Capacity: 2, PricePerDay: 25},
			{ID: "2", Name: "City Cruiser", Company: "Urban Scooters", Capacity: 1, PricePerDay: 15},
		}),
		Cabs: catalog.New([]entity.Cab{
			{ID: "1", Name: "Valley Shuttle", Company: "Family Transport", Capacity: 6, PricePerDay: 60},
		}),
		Accommodations: catalog.NewNumeric([]entity.Accommodation{}),
		Cultures:       catalog.NewNumeric([]entity.CultureEntry{}),
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		Form: utils.FormConfig{
			SessionTTL:     time.Hour,
			AutoCloseDelay: 10 * time.Millisecond,
		},
	}
}

func newBookingFixture() (BookingService, *gateway.BookingsClientMock, *gateway.NotifierMock) {
	api := &gateway.BookingsClientMock{}
	notifier := &gateway.NotifierMock{}
	svc := NewBookingService(testStore(), api, notifier, testConfig(), zap.NewNop())
	return svc, api, notifier
}

func validBikeRequest() *request.BikeBookingRequest {
	return &request.BikeBookingRequest{
		BikeID:         "1",
		BookingDate:    "2024-06-01",
		BookingTime:    "10:00",
		Name:           "Pema",
		Email:          "pema@example.com",
		PrimaryPhone:   "9876543210",
		NumberOfPeople: 2,
		RecaptchaToken: "tok",
	}
}

func validCabRequest() *request.CabBookingRequest {
	return &request.CabBookingRequest{
		CabID:          "1",
		TripType:       "ROUND_TRIP",
		PickUpLocation: "Airport",
		DropLocation:   "Town Square",
		PickUpDate:     "2024-06-01",
		PickUpTime:     "09:00",
		ReturnDate:     "2024-06-04",
		ReturnTime:     "18:00",
		Name:           "Tashi",
		Email:          "tashi@example.com",
		PrimaryPhone:   "9876543210",
	}
}

func TestSubmitBikeBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, api, notifier := newBookingFixture()

		outcome, err := svc.SubmitBikeBooking(context.Background(), validBikeRequest())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(outcome.EnquiryID, "ENQ-"))
		assert.Equal(t, "Trail Runner", outcome.ItemName)
		assert.Equal(t, form.StatusPending, outcome.Status)
		assert.Equal(t, "25.00", outcome.TotalCost)

		require.Len(t, api.BikeBookings, 1)
		payload := api.BikeBookings[0].(form.BikeBookingPayload)
		assert.Equal(t, "Trail Runner", payload.BikeName)
		assert.Equal(t, form.StatusPending, payload.Status)
		assert.Equal(t, "25.00", payload.TotalCost)
		assert.Equal(t, "tok", payload.RecaptchaToken)

		assert.Equal(t, 1, notifier.SuccessCount())
	})

	t.Run("ValidationFailureSkipsNetwork", func(t *testing.T) {
		svc, api, _ := newBookingFixture()

		req := validBikeRequest()
		req.Email = ""
		_, err := svc.SubmitBikeBooking(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.Equal(t, 0, api.Calls())
	})

	t.Run("CapacityExceeded", func(t *testing.T) {
		svc, api, _ := newBookingFixture()

		req := validBikeRequest()
		req.BikeID = "2" // capacity 1
		_, err := svc.SubmitBikeBooking(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds bike capacity")
		assert.Equal(t, 0, api.Calls())
	})

	t.Run("UnknownBike", func(t *testing.T) {
		svc, _, _ := newBookingFixture()

		req := validBikeRequest()
		req.BikeID = "99"
		_, err := svc.SubmitBikeBooking(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		svc, api, notifier := newBookingFixture()
		api.Err = assert.AnError

		_, err := svc.SubmitBikeBooking(context.Background(), validBikeRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "submit booking")
		assert.Equal(t, 1, notifier.ErrorCount())
	})
}

func TestSubmitCabBooking(t *testing.T) {
	t.Run("RoundTripDerivesTotalFromDays", func(t *testing.T) {
		svc, api, _ := newBookingFixture()

		outcome, err := svc.SubmitCabBooking(context.Background(), validCabRequest())
		require.NoError(t, err)

		// 3 days at 60 per day
		assert.Equal(t, "180.00", outcome.TotalCost)

		require.Len(t, api.VehicleBookings, 1)
		payload := api.VehicleBookings[0].(form.CabBookingPayload)
		assert.Equal(t, entity.TripRoundTrip, payload.TripType)
		assert.Equal(t, "180.00", payload.TotalCost)
	})

	t.Run("MissingReturnLegRejected", func(t *testing.T) {
		svc, api, _ := newBookingFixture()

		req := validCabRequest()
		req.ReturnDate = ""
		req.ReturnTime = ""
		_, err := svc.SubmitCabBooking(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "returnDate")
		assert.Equal(t, 0, api.Calls())
	})

	t.Run("OneWayIsFlatPrice", func(t *testing.T) {
		svc, _, _ := newBookingFixture()

		req := validCabRequest()
		req.TripType = "ONE_WAY"
		req.ReturnDate = ""
		req.ReturnTime = ""
		outcome, err := svc.SubmitCabBooking(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "60.00", outcome.TotalCost)
	})
}

func TestEstimate(t *testing.T) {
	svc, _, _ := newBookingFixture()

	t.Run("BikeIsFlat", func(t *testing.T) {
		got, err := svc.Estimate(&request.BookingEstimateRequest{
			ItemType: "bike",
			ItemID:   "1",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, got.RentalDays)
		assert.Equal(t, 25.0, got.TotalCost)
	})

	t.Run("CabRoundTrip", func(t *testing.T) {
		got, err := svc.Estimate(&request.BookingEstimateRequest{
			ItemType:   "cab",
			ItemID:     "1",
			TripType:   "ROUND_TRIP",
			PickUpDate: "2024-06-01",
			ReturnDate: "2024-06-04",
		})
		require.NoError(t, err)
		assert.Equal(t, "Valley Shuttle", got.ItemName)
		assert.Equal(t, 3, got.RentalDays)
		assert.Equal(t, 180.0, got.TotalCost)
	})

	t.Run("CabMissingReturnDoubles", func(t *testing.T) {
		got, err := svc.Estimate(&request.BookingEstimateRequest{
			ItemType:   "cab",
			ItemID:     "1",
			TripType:   "TWO_WAY",
			PickUpDate: "2024-06-01",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, got.RentalDays)
		assert.Equal(t, 120.0, got.TotalCost)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		_, err := svc.Estimate(&request.BookingEstimateRequest{
			ItemType: "cab",
			ItemID:   "99",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func strptr(s string) *string { return &s }

func TestFormSessions(t *testing.T) {
	t.Run("OpenUpdateSubmit", func(t *testing.T) {
		svc, api, _ := newBookingFixture()

		state, err := svc.OpenForm(&request.OpenFormRequest{ItemType: "cab", ItemID: "1"})
		require.NoError(t, err)
		assert.Equal(t, string(form.StateEditing), state.State)
		require.NotEmpty(t, state.FormID)
		formID := state.FormID

		state, err = svc.UpdateForm(formID, &request.UpdateFormRequest{
			TripType:       strptr("ROUND_TRIP"),
			PickUpLocation: strptr("Airport"),
			DropLocation:   strptr("Town Square"),
			PickUpDate:     strptr("2024-06-01"),
			PickUpTime:     strptr("09:00"),
			ReturnDate:     strptr("2024-06-04"),
			ReturnTime:     strptr("18:00"),
			Name:           strptr("Tashi"),
			Email:          strptr("tashi@example.com"),
			PrimaryPhone:   strptr("9876543210"),
		})
		require.NoError(t, err)

		// the derived total tracks every edit
		draft := state.Draft.(form.CabDraft)
		assert.Equal(t, 180.0, draft.TotalCost)

		state, err = svc.SubmitForm(context.Background(), formID, &request.SubmitFormRequest{RecaptchaToken: "tok-9"})
		require.NoError(t, err)
		assert.Equal(t, string(form.StateSucceeded), state.State)

		require.Len(t, api.VehicleBookings, 1)
		payload := api.VehicleBookings[0].(form.CabBookingPayload)
		assert.Equal(t, "tok-9", payload.RecaptchaToken)
		assert.Equal(t, "180.00", payload.TotalCost)

		// success schedules the auto-close, which removes the session
		assert.Eventually(t, func() bool {
			_, err := svc.UpdateForm(formID, &request.UpdateFormRequest{})
			return err != nil
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("SubmitIncompleteFormKeepsSession", func(t *testing.T) {
		svc, api, _ := newBookingFixture()

		state, err := svc.OpenForm(&request.OpenFormRequest{ItemType: "bike", ItemID: "1"})
		require.NoError(t, err)

		_, err = svc.SubmitForm(context.Background(), state.FormID, &request.SubmitFormRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required fields")
		assert.Equal(t, 0, api.Calls())

		// the session stays open for more edits
		got, err := svc.UpdateForm(state.FormID, &request.UpdateFormRequest{Name: strptr("Pema")})
		require.NoError(t, err)
		assert.Equal(t, string(form.StateEditing), got.State)
	})

	t.Run("CloseRemovesSession", func(t *testing.T) {
		svc, _, _ := newBookingFixture()

		state, err := svc.OpenForm(&request.OpenFormRequest{ItemType: "bike", ItemID: "1"})
		require.NoError(t, err)

		require.NoError(t, svc.CloseForm(state.FormID, form.TriggerEscape))

		_, err = svc.UpdateForm(state.FormID, &request.UpdateFormRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		// closing twice is a miss, not a crash
		err = svc.CloseForm(state.FormID, form.TriggerCancel)
		require.Error(t, err)
	})

	t.Run("UnknownForm", func(t *testing.T) {
		svc, _, _ := newBookingFixture()

		_, err := svc.UpdateForm("nope", &request.UpdateFormRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("UnknownItemType", func(t *testing.T) {
		svc, _, _ := newBookingFixture()

		_, err := svc.OpenForm(&request.OpenFormRequest{ItemType: "yak", ItemID: "1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestExpireIdleForms(t *testing.T) {
	svc, _, _ := newBookingFixture()

	state, err := svc.OpenForm(&request.OpenFormRequest{ItemType: "cab", ItemID: "1"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	n := svc.ExpireIdleForms(time.Millisecond)
	assert.Equal(t, 1, n)

	_, err = svc.UpdateForm(state.FormID, &request.UpdateFormRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// nothing left to expire
	assert.Equal(t, 0, svc.ExpireIdleForms(time.Millisecond))
}
