package request

// BikeBookingRequest is a one-shot bike booking submission. The total cost
// is never accepted from the client; it is derived server-side.
type BikeBookingRequest struct {
	BikeID          string `json:"bike_id" validate:"required"`
	BookingDate     string `json:"bookingDate" validate:"required"`
	BookingTime     string `json:"bookingTime" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PrimaryPhone    string `json:"primaryPhone" validate:"required"`
	SecondaryPhone  string `json:"secondaryPhone"`
	NumberOfPeople  int    `json:"numberOfPeople" validate:"omitempty,min=1,max=2"`
	SpecialRequests string `json:"specialRequests"`
	RecaptchaToken  string `json:"recaptchaToken"`
}

// CabBookingRequest is a one-shot cab booking submission. Return date and
// time are conditionally required for TWO_WAY and ROUND_TRIP trips; that
// check lives in the form controller, not in the tags.
type CabBookingRequest struct {
	CabID           string `json:"cab_id" validate:"required"`
	TripType        string `json:"tripType" validate:"omitempty,oneof=ONE_WAY TWO_WAY ROUND_TRIP"`
	PickUpLocation  string `json:"pickUpLocation" validate:"required"`
	DropLocation    string `json:"dropLocation" validate:"required"`
	PickUpDate      string `json:"pickUpDate" validate:"required"`
	PickUpTime      string `json:"pickUpTime" validate:"required"`
	ReturnDate      string `json:"returnDate"`
	ReturnTime      string `json:"returnTime"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PrimaryPhone    string `json:"primaryPhone" validate:"required"`
	SecondaryPhone  string `json:"secondaryPhone"`
	NumberOfPeople  int    `json:"numberOfPeople" validate:"omitempty,min=1,max=10"`
	SpecialRequests string `json:"specialRequests"`
	RecaptchaToken  string `json:"recaptchaToken"`
}

// BookingEstimateRequest asks for a reactive recompute of the derived total
// while the user edits the form.
type BookingEstimateRequest struct {
	ItemType   string `json:"itemType" validate:"required,oneof=bike cab"`
	ItemID     string `json:"itemId" validate:"required"`
	TripType   string `json:"tripType" validate:"omitempty,oneof=ONE_WAY TWO_WAY ROUND_TRIP"`
	PickUpDate string `json:"pickUpDate"`
	ReturnDate string `json:"returnDate"`
}
