package form

import (
	"testing"

	"tourism-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	t.Run("WholeDaySpan", func(t *testing.T) {
		assert.Equal(t, 3, RentalDays("2024-06-01", "2024-06-04"))
		assert.Equal(t, 1, RentalDays("2024-06-01", "2024-06-02"))
	})

	t.Run("SameDay", func(t *testing.T) {
		assert.Equal(t, 0, RentalDays("2024-06-01", "2024-06-01"))
	})

	t.Run("ReturnBeforePickup", func(t *testing.T) {
		assert.Equal(t, -2, RentalDays("2024-06-03", "2024-06-01"))
	})

	t.Run("UnparseableDates", func(t *testing.T) {
		assert.Equal(t, 0, RentalDays("not-a-date", "2024-06-04"))
		assert.Equal(t, 0, RentalDays("2024-06-01", "someday"))
		assert.Equal(t, 0, RentalDays("", ""))
	})
}

func TestEstimateTotal(t *testing.T) {
	const price = 60.0

	t.Run("OneWayIsFlat", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripOneWay, "2024-06-01", "2024-06-04")
		assert.Equal(t, price, got)
	})

	t.Run("RoundTripMultipliesByDays", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripRoundTrip, "2024-06-01", "2024-06-04")
		assert.Equal(t, 180.0, got)
	})

	t.Run("TwoWayMultipliesByDays", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripTwoWay, "2024-06-01", "2024-06-06")
		assert.Equal(t, 300.0, got)
	})

	t.Run("MissingReturnDefaultsToDouble", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripRoundTrip, "2024-06-01", "")
		assert.Equal(t, 120.0, got)
	})

	t.Run("ReturnOnPickupDayDegradesToSingleUnit", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripRoundTrip, "2024-06-01", "2024-06-01")
		assert.Equal(t, price, got)
	})

	t.Run("ReturnBeforePickupDegradesToSingleUnit", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripTwoWay, "2024-06-03", "2024-06-01")
		assert.Equal(t, price, got)
	})

	t.Run("UnparseableDatesDegradeToSingleUnit", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripRoundTrip, "junk", "more junk")
		assert.Equal(t, price, got)
	})

	t.Run("NeverNegative", func(t *testing.T) {
		got := EstimateTotal(price, entity.TripRoundTrip, "2024-06-09", "2024-06-01")
		assert.Greater(t, got, 0.0)
	})
}
