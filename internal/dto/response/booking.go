package response

import "time"

// BookingOutcome reports a forwarded submission: the locally generated
// enquiry id, the fixed initial status and the server-derived total.
type BookingOutcome struct {
	EnquiryID   string    `json:"enquiry_id"`
	ItemName    string    `json:"item_name"`
	Status      string    `json:"status"`
	TotalCost   string    `json:"total_cost"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// EstimateResponse is the reactive recompute result for the current inputs.
type EstimateResponse struct {
	ItemName    string  `json:"item_name"`
	RentalDays  int     `json:"rental_days"`
	PricePerDay float64 `json:"price_per_day"`
	TotalCost   float64 `json:"total_cost"`
}
