package catalog

import (
	"testing"

	"tourism-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBikes() []entity.Bike {
	return []entity.Bike{
		{ID: "1", Name: "Trail Runner", Company: "Explorer Bikes", PricePerDay: 25},
		{ID: "2", Name: "City Cruiser", Company: "Urban Scooters", PricePerDay: 15},
		{ID: "3", Name: "Ridge Climber", Company: "Explorer Bikes", PricePerDay: 30},
	}
}

func testCultures() []entity.CultureEntry {
	return []entity.CultureEntry{
		{ID: 1, Title: "Monastery Walk", Category: "Spiritual"},
		{ID: 2, Title: "Mask Festival", Category: "Festivals"},
		{ID: 3, Title: "Prayer Wheel Trail", Category: "Spiritual"},
	}
}

func TestCatalogFindByID(t *testing.T) {
	c := New(testBikes())

	t.Run("Hit", func(t *testing.T) {
		bike, ok := c.FindByID("2")
		require.True(t, ok)
		assert.Equal(t, "City Cruiser", bike.Name)
	})

	t.Run("Miss", func(t *testing.T) {
		_, ok := c.FindByID("99")
		assert.False(t, ok)
	})

	t.Run("EmptyID", func(t *testing.T) {
		_, ok := c.FindByID("")
		assert.False(t, ok)
	})
}

func TestNumericCatalog(t *testing.T) {
	c := NewNumeric(testCultures())

	t.Run("Hit", func(t *testing.T) {
		culture, ok := c.FindByID("3")
		require.True(t, ok)
		assert.Equal(t, "Prayer Wheel Trail", culture.Title)
	})

	t.Run("NormalizesLeadingZeros", func(t *testing.T) {
		culture, ok := c.FindByID("03")
		require.True(t, ok)
		assert.Equal(t, 3, culture.ID)
	})

	t.Run("MalformedIDIsMissNotError", func(t *testing.T) {
		_, ok := c.FindByID("abc")
		assert.False(t, ok)
	})
}

func TestCatalogRelated(t *testing.T) {
	c := New(testBikes())

	t.Run("SameClassExcludingSelf", func(t *testing.T) {
		related := c.Related("1")
		require.Len(t, related, 1)
		assert.Equal(t, "Ridge Climber", related[0].Name)
	})

	t.Run("PreservesCatalogOrder", func(t *testing.T) {
		bikes := append(testBikes(), entity.Bike{ID: "4", Name: "Peak Racer", Company: "Explorer Bikes"})
		related := New(bikes).Related("3")
		require.Len(t, related, 2)
		assert.Equal(t, "Trail Runner", related[0].Name)
		assert.Equal(t, "Peak Racer", related[1].Name)
	})

	t.Run("MissYieldsNil", func(t *testing.T) {
		assert.Nil(t, c.Related("99"))
	})
}

func TestCatalogAll(t *testing.T) {
	c := New(testBikes())

	all := c.All()
	assert.Equal(t, 3, c.Len())
	require.Len(t, all, 3)

	// mutating the returned slice must not touch the catalog
	all[0].Name = "changed"
	bike, _ := c.FindByID("1")
	assert.Equal(t, "Trail Runner", bike.Name)
}

func TestLoad(t *testing.T) {
	store, err := Load(zap.NewNop())
	require.NoError(t, err)

	assert.NotZero(t, store.Bikes.Len())
	assert.NotZero(t, store.Cabs.Len())
	assert.NotZero(t, store.Accommodations.Len())
	assert.NotZero(t, store.Cultures.Len())

	// every seed entry must resolve through its own catalog
	for _, bike := range store.Bikes.All() {
		_, ok := store.Bikes.FindByID(bike.ID)
		assert.True(t, ok)
	}
	for _, culture := range store.Cultures.All() {
		_, ok := store.Cultures.FindByID(culture.Key())
		assert.True(t, ok)
	}
}
