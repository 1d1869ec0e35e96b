package entity

import "strconv"

// CultureEntry is a cultural attraction from the static catalog. Identified
// by a numeric ID on the wire.
type CultureEntry struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	Icon             string   `json:"icon"`
	Category         string   `json:"category"`
	Highlights       []string `json:"highlights"`
	BestTime         string   `json:"bestTime"`
	Experiences      int      `json:"experiences"`
}

func (c CultureEntry) Key() string { return strconv.Itoa(c.ID) }

// Class groups entries by cultural category for related-item lookups.
func (c CultureEntry) Class() string { return c.Category }
