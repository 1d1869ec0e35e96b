package entity

// Cab is a vehicle-with-driver record from the static catalog.
type Cab struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Capacity    int      `json:"capacity"`
	PricePerDay float64  `json:"pricePerDay"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Features    []string `json:"features"`
}

func (c Cab) Key() string { return c.ID }

// Class groups cabs by operator for related-item lookups.
func (c Cab) Class() string { return c.Company }
