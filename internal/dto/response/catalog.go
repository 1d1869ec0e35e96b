package response

import "tourism-booking/internal/data/entity"

// Detail responses pair the resolved item with the related subset: every
// other catalog entry sharing its classification, in original order.

type BikeDetailResponse struct {
	entity.Bike
	Related []entity.Bike `json:"related"`
}

type CabDetailResponse struct {
	entity.Cab
	Related []entity.Cab `json:"related"`
}

type AccommodationDetailResponse struct {
	entity.Accommodation
	Related []entity.Accommodation `json:"related"`
}

type CultureDetailResponse struct {
	entity.CultureEntry
	Related []entity.CultureEntry `json:"related"`
}
