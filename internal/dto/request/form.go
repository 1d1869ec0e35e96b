package request

// OpenFormRequest opens a booking form session for one catalog item, the
// server-side counterpart of opening the booking dialog.
type OpenFormRequest struct {
	ItemType string `json:"itemType" validate:"required,oneof=bike cab"`
	ItemID   string `json:"itemId" validate:"required"`
}

// UpdateFormRequest carries partial field edits for an open form. Nil fields
// are left untouched; every applied edit triggers a recompute of the derived
// total. Fields that do not apply to the session's item type are ignored.
type UpdateFormRequest struct {
	TripType        *string `json:"tripType" validate:"omitempty,oneof=ONE_WAY TWO_WAY ROUND_TRIP"`
	PickUpLocation  *string `json:"pickUpLocation"`
	DropLocation    *string `json:"dropLocation"`
	PickUpDate      *string `json:"pickUpDate"`
	PickUpTime      *string `json:"pickUpTime"`
	ReturnDate      *string `json:"returnDate"`
	ReturnTime      *string `json:"returnTime"`
	BookingDate     *string `json:"bookingDate"`
	BookingTime     *string `json:"bookingTime"`
	Name            *string `json:"name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	PrimaryPhone    *string `json:"primaryPhone"`
	SecondaryPhone  *string `json:"secondaryPhone"`
	NumberOfPeople  *int    `json:"numberOfPeople" validate:"omitempty,min=1,max=10"`
	SpecialRequests *string `json:"specialRequests"`
}

// SubmitFormRequest triggers the submit action on an open form.
type SubmitFormRequest struct {
	RecaptchaToken string `json:"recaptchaToken"`
}

// CloseFormRequest names the dismissal gesture: escape, outside or cancel.
// An empty trigger defaults to cancel.
type CloseFormRequest struct {
	Trigger string `json:"trigger" validate:"omitempty,oneof=escape outside cancel"`
}
