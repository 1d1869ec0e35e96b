package form

import "tourism-booking/internal/data/entity"

// StatusPending is the fixed initial status carried by every submission.
const StatusPending = "PENDING"

// BikeBookingPayload is the wire snapshot sent to the reservations API for a
// bike rental. Field names follow the upstream contract.
type BikeBookingPayload struct {
	BikeName        string `json:"bike_name"`
	BookingDate     string `json:"bookingDate"`
	BookingTime     string `json:"bookingTime"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PrimaryPhone    string `json:"primaryPhone"`
	SecondaryPhone  string `json:"secondaryPhone"`
	NumberOfPeople  int    `json:"numberOfPeople"`
	TotalCost       string `json:"totalCost"`
	Status          string `json:"status"`
	SpecialRequests string `json:"specialRequests"`
	RecaptchaToken  string `json:"recaptchaToken"`
}

// CabBookingPayload is the wire snapshot for a cab booking. When no return
// leg was entered, return date and time mirror the pickup values.
type CabBookingPayload struct {
	CabName         string          `json:"cab_name"`
	TripType        entity.TripType `json:"tripType"`
	PickUpLocation  string          `json:"pickUpLocation"`
	DropLocation    string          `json:"dropLocation"`
	PickUpDate      string          `json:"pickUpDate"`
	PickUpTime      string          `json:"pickUpTime"`
	ReturnDate      string          `json:"returnDate"`
	ReturnTime      string          `json:"returnTime"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PrimaryPhone    string          `json:"primaryPhone"`
	SecondaryPhone  string          `json:"secondaryPhone"`
	NumberOfPeople  int             `json:"numberOfPeople"`
	TotalCost       string          `json:"totalCost"`
	Status          string          `json:"status"`
	SpecialRequests string          `json:"specialRequests"`
	RecaptchaToken  string          `json:"recaptchaToken"`
}

// ContactPayload is the wire snapshot for a contact message.
type ContactPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}
