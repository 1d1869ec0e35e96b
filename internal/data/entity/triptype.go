package entity

type TripType string

const (
	TripOneWay    TripType = "ONE_WAY"
	TripTwoWay    TripType = "TWO_WAY"
	TripRoundTrip TripType = "ROUND_TRIP"
)

func (t TripType) Valid() bool {
	switch t {
	case TripOneWay, TripTwoWay, TripRoundTrip:
		return true
	}
	return false
}

// RequiresReturn reports whether the trip type needs a return date and time.
func (t TripType) RequiresReturn() bool {
	return t == TripTwoWay || t == TripRoundTrip
}
