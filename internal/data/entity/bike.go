package entity

// Bike is a rentable two-wheeler record from the static catalog.
type Bike struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Capacity    int      `json:"capacity"`
	PricePerDay float64  `json:"pricePerDay"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Features    []string `json:"features"`
}

func (b Bike) Key() string { return b.ID }

// Class groups bikes by rental company for related-item lookups.
func (b Bike) Class() string { return b.Company }
