package form

import (
	"math"
	"time"

	"tourism-booking/internal/data/entity"
)

// DateLayout is the wire format for all booking dates.
const DateLayout = "2006-01-02"

// RentalDays returns the whole-day span between pickup and return, rounded
// up. Unparseable dates yield 0 so callers degrade to the single-unit price.
func RentalDays(pickUpDate, returnDate string) int {
	pickUp, err := time.Parse(DateLayout, pickUpDate)
	if err != nil {
		return 0
	}
	ret, err := time.Parse(DateLayout, returnDate)
	if err != nil {
		return 0
	}
	return int(math.Ceil(ret.Sub(pickUp).Hours() / 24))
}

// EstimateTotal derives the total cost from the price per unit, the trip
// type and the date pair.
//
// ONE_WAY is a flat single-unit price regardless of dates. TWO_WAY and
// ROUND_TRIP multiply the price by the whole-day span when both dates are
// present; a span of zero or less (return on or before pickup) degrades to
// one unit, and a missing return date defaults to two units. The result is
// never negative and never zero for a positive price per unit.
func EstimateTotal(pricePerUnit float64, trip entity.TripType, pickUpDate, returnDate string) float64 {
	if !trip.RequiresReturn() {
		return pricePerUnit
	}

	if returnDate == "" {
		return pricePerUnit * 2
	}

	if days := RentalDays(pickUpDate, returnDate); days > 0 {
		return float64(days) * pricePerUnit
	}
	return pricePerUnit
}
