package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMock(t *testing.T) {
	q := SearchQuery{CityCode: "LON", CheckIn: "2026-06-01", CheckOut: "2026-06-05", Guests: 2, Nights: 4}

	results := GenerateMock(q)

	require.Len(t, results, 3)
	assert.Equal(t, "HT-MOCK-001", results[0].ID)
	assert.Equal(t, "Royal London Hotel", results[0].Name)
	assert.Equal(t, 250, results[0].PricePerNight)
	assert.Equal(t, 1000, results[0].TotalPrice)
	require.NotNil(t, results[0].Rating)
	assert.Equal(t, 4.7, *results[0].Rating)
	assert.Equal(t, "100 Main St, LON, LON", results[0].Address)
	assert.Equal(t, []string{"WiFi", "Gym", "Restaurant", "Pool"}, results[0].Amenities)

	for _, r := range results {
		assert.Equal(t, "LON", r.CityCode)
		assert.Equal(t, 4, r.Nights)
		assert.Equal(t, r.PricePerNight*r.Nights, r.TotalPrice)
		assert.Equal(t, r.TotalPrice, r.Price)
	}
}

func TestGenerateMock_UnknownCityFallsBack(t *testing.T) {
	q := SearchQuery{CityCode: "ZRH", CheckIn: "2026-06-01", CheckOut: "2026-06-03", Guests: 1, Nights: 2}

	results := GenerateMock(q)

	require.Len(t, results, 3)
	assert.Equal(t, "Grand Central Hotel", results[0].Name)
	assert.Equal(t, "ZRH", results[0].CityCode, "fallback catalog keeps the requested city code")
}

func TestGenerateMock_Deterministic(t *testing.T) {
	q := SearchQuery{CityCode: "PAR", CheckIn: "2026-09-10", CheckOut: "2026-09-12", Guests: 2, Nights: 2}

	assert.Equal(t, GenerateMock(q), GenerateMock(q))
}
