package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"tourism-booking/internal/data/entity"

	"go.uber.org/zap"
)

//go:embed seed/*.json
var seedFS embed.FS

// Store groups all catalogs. Loaded once at startup, read-only afterwards,
// shared by every request.
type Store struct {
	Bikes          *Catalog[entity.Bike]
	Cabs           *Catalog[entity.Cab]
	Accommodations *Catalog[entity.Accommodation]
	Cultures       *Catalog[entity.CultureEntry]

	log *zap.Logger
}

// Load decodes the embedded seed documents into the catalogs.
func Load(log *zap.Logger) (*Store, error) {
	var bikes []entity.Bike
	if err := loadSeed("seed/bikes.json", &bikes); err != nil {
		return nil, err
	}

	var cabs []entity.Cab
	if err := loadSeed("seed/cabs.json", &cabs); err != nil {
		return nil, err
	}

	var accommodations []entity.Accommodation
	if err := loadSeed("seed/accommodations.json", &accommodations); err != nil {
		return nil, err
	}

	var cultures []entity.CultureEntry
	if err := loadSeed("seed/cultures.json", &cultures); err != nil {
		return nil, err
	}

	store := &Store{
		Bikes:          New(bikes),
		Cabs:           New(cabs),
		Accommodations: NewNumeric(accommodations),
		Cultures:       NewNumeric(cultures),
		log:            log.With(zap.String("component", "catalog")),
	}

	store.log.Info("Catalogs loaded",
		zap.Int("bikes", store.Bikes.Len()),
		zap.Int("cabs", store.Cabs.Len()),
		zap.Int("accommodations", store.Accommodations.Len()),
		zap.Int("cultures", store.Cultures.Len()),
	)

	return store, nil
}

func loadSeed(name string, out any) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode seed %s: %w", name, err)
	}
	return nil
}
