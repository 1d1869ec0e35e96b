package entity

import "strconv"

// Accommodation is a stay option (hotel, homestay, resort) from the static
// catalog. Identified by a numeric ID on the wire.
type Accommodation struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	Rating        float64  `json:"rating"`
	Image         string   `json:"image"`
	MaxGuests     int      `json:"maxGuests"`
	RoomTypes     []string `json:"roomTypes"`
	Amenities     []string `json:"amenities"`
}

func (a Accommodation) Key() string { return strconv.Itoa(a.ID) }

// Class groups stays by property type for related-item lookups.
func (a Accommodation) Class() string { return a.Type }
