package usecase

import (
	"fmt"

	"tourism-booking/internal/data/catalog"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService backs the list/detail navigation views. All lookups go
// against the in-memory catalogs, so no context is threaded through.
type CatalogService interface {
	ListBikes() []entity.Bike
	GetBike(id string) (*response.BikeDetailResponse, error)

	ListCabs() []entity.Cab
	GetCab(id string) (*response.CabDetailResponse, error)

	ListAccommodations() []entity.Accommodation
	GetAccommodation(id string) (*response.AccommodationDetailResponse, error)

	ListCultures() []entity.CultureEntry
	GetCulture(id string) (*response.CultureDetailResponse, error)
}

type catalogService struct {
	store *catalog.Store
	log   *zap.Logger
}

func NewCatalogService(store *catalog.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		store: store,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListBikes() []entity.Bike { return s.store.Bikes.All() }

func (s *catalogService) GetBike(id string) (*response.BikeDetailResponse, error) {
	bike, ok := s.store.Bikes.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("bike %s not found", id)
	}
	return &response.BikeDetailResponse{
		Bike:    bike,
		Related: s.store.Bikes.Related(id),
	}, nil
}

func (s *catalogService) ListCabs() []entity.Cab { return s.store.Cabs.All() }

func (s *catalogService) GetCab(id string) (*response.CabDetailResponse, error) {
	cab, ok := s.store.Cabs.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("cab %s not found", id)
	}
	return &response.CabDetailResponse{
		Cab:     cab,
		Related: s.store.Cabs.Related(id),
	}, nil
}

func (s *catalogService) ListAccommodations() []entity.Accommodation {
	return s.store.Accommodations.All()
}

func (s *catalogService) GetAccommodation(id string) (*response.AccommodationDetailResponse, error) {
	stay, ok := s.store.Accommodations.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("accommodation %s not found", id)
	}
	return &response.AccommodationDetailResponse{
		Accommodation: stay,
		Related:       s.store.Accommodations.Related(id),
	}, nil
}

func (s *catalogService) ListCultures() []entity.CultureEntry {
	return s.store.Cultures.All()
}

func (s *catalogService) GetCulture(id string) (*response.CultureDetailResponse, error) {
	culture, ok := s.store.Cultures.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("culture entry %s not found", id)
	}
	return &response.CultureDetailResponse{
		CultureEntry: culture,
		Related:      s.store.Cultures.Related(id),
	}, nil
}
