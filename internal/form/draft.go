package form

import (
	"fmt"

	"tourism-booking/internal/data/entity"
)

// Draft is the mutable in-progress state of one booking attempt. A draft is
// owned exclusively by its controller; the controller serializes access.
type Draft interface {
	// Missing returns the names of required fields that are still empty.
	Missing() []string
	// Recompute refreshes the derived total from the current inputs.
	Recompute(pricePerUnit float64)
	// Reset returns every field to its initial empty value.
	Reset()
	// Payload snapshots the draft into its wire form with the supplied
	// verification token and a PENDING status.
	Payload(token string) any
}

// BikeDraft is the form state for a bike rental.
type BikeDraft struct {
	BikeName        string  `json:"bike_name"`
	BookingDate     string  `json:"bookingDate"`
	BookingTime     string  `json:"bookingTime"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	PrimaryPhone    string  `json:"primaryPhone"`
	SecondaryPhone  string  `json:"secondaryPhone"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	SpecialRequests string  `json:"specialRequests"`
	TotalCost       float64 `json:"totalCost"`
}

// NewBikeDraft starts an empty draft for the named bike.
func NewBikeDraft(bikeName string) *BikeDraft {
	return &BikeDraft{BikeName: bikeName, NumberOfPeople: 1}
}

func (d *BikeDraft) Missing() []string {
	var missing []string
	for field, value := range map[string]string{
		"name":         d.Name,
		"email":        d.Email,
		"primaryPhone": d.PrimaryPhone,
		"bookingDate":  d.BookingDate,
		"bookingTime":  d.BookingTime,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Recompute applies the single-day flat rate.
func (d *BikeDraft) Recompute(pricePerUnit float64) {
	d.TotalCost = EstimateTotal(pricePerUnit, entity.TripOneWay, d.BookingDate, "")
}

func (d *BikeDraft) Reset() {
	*d = BikeDraft{NumberOfPeople: 1}
}

func (d *BikeDraft) Payload(token string) any {
	return BikeBookingPayload{
		BikeName:        d.BikeName,
		BookingDate:     d.BookingDate,
		BookingTime:     d.BookingTime,
		Name:            d.Name,
		Email:           d.Email,
		PrimaryPhone:    d.PrimaryPhone,
		SecondaryPhone:  d.SecondaryPhone,
		NumberOfPeople:  d.NumberOfPeople,
		TotalCost:       fmt.Sprintf("%.2f", d.TotalCost),
		Status:          StatusPending,
		SpecialRequests: d.SpecialRequests,
		RecaptchaToken:  token,
	}
}

// CabDraft is the form state for a cab booking.
type CabDraft struct {
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
	SpecialRequests string          `json:"specialRequests"`
	TotalCost       float64         `json:"totalCost"`
}

// NewCabDraft starts an empty one-way draft for the named cab.
func NewCabDraft(cabName string) *CabDraft {
	return &CabDraft{CabName: cabName, TripType: entity.TripOneWay, NumberOfPeople: 1}
}

func (d *CabDraft) Missing() []string {
	required := map[string]string{
		"name":           d.Name,
		"email":          d.Email,
		"primaryPhone":   d.PrimaryPhone,
		"pickUpLocation": d.PickUpLocation,
		"dropLocation":   d.DropLocation,
		"pickUpDate":     d.PickUpDate,
		"pickUpTime":     d.PickUpTime,
	}
	// Conditionally required for trips with a return leg
	if d.TripType.RequiresReturn() {
		required["returnDate"] = d.ReturnDate
		required["returnTime"] = d.ReturnTime
	}

	var missing []string
	for field, value := range required {
		if value == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func (d *CabDraft) Recompute(pricePerUnit float64) {
	d.TotalCost = EstimateTotal(pricePerUnit, d.TripType, d.PickUpDate, d.ReturnDate)
}

func (d *CabDraft) Reset() {
	*d = CabDraft{TripType: entity.TripOneWay, NumberOfPeople: 1}
}

func (d *CabDraft) Payload(token string) any {
	returnDate := d.ReturnDate
	if returnDate == "" {
		returnDate = d.PickUpDate
	}
	returnTime := d.ReturnTime
	if returnTime == "" {
		returnTime = d.PickUpTime
	}

	return CabBookingPayload{
		CabName:         d.CabName,
		TripType:        d.TripType,
		PickUpLocation:  d.PickUpLocation,
		DropLocation:    d.DropLocation,
		PickUpDate:      d.PickUpDate,
		PickUpTime:      d.PickUpTime,
		ReturnDate:      returnDate,
		ReturnTime:      returnTime,
		Name:            d.Name,
		Email:           d.Email,
		PrimaryPhone:    d.PrimaryPhone,
		SecondaryPhone:  d.SecondaryPhone,
		NumberOfPeople:  d.NumberOfPeople,
		TotalCost:       fmt.Sprintf("%.2f", d.TotalCost),
		Status:          StatusPending,
		SpecialRequests: d.SpecialRequests,
		RecaptchaToken:  token,
	}
}

// ContactDraft is the form state for a contact message.
type ContactDraft struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

func (d *ContactDraft) Missing() []string {
	var missing []string
	for field, value := range map[string]string{
		"name":         d.Name,
		"email":        d.Email,
		"phone_number": d.PhoneNumber,
		"subject":      d.Subject,
		"message":      d.Message,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Recompute is a no-op: a contact message has no derived cost.
func (d *ContactDraft) Recompute(float64) {}

func (d *ContactDraft) Reset() {
	*d = ContactDraft{}
}

func (d *ContactDraft) Payload(token string) any {
	return ContactPayload{
		Name:           d.Name,
		Email:          d.Email,
		PhoneNumber:    d.PhoneNumber,
		Subject:        d.Subject,
		Message:        d.Message,
		RecaptchaToken: token,
	}
}
