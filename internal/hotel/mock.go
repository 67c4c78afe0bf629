package hotel

import "fmt"

// Synthetic per-city catalogs served whenever the live provider is
// unavailable or fails. Deterministic for a given query.

type catalogEntry struct {
	name      string
	rating    float64
	basePrice int
}

var mockCatalog = map[string][]catalogEntry{
	"NYC": {
		{name: "Grand Central Hotel", rating: 4.8, basePrice: 280},
		{name: "Park View Inn", rating: 4.5, basePrice: 220},
		{name: "Downtown Suites", rating: 4.2, basePrice: 180},
	},
	"LON": {
		{name: "Royal London Hotel", rating: 4.7, basePrice: 250},
		{name: "Westminster Inn", rating: 4.4, basePrice: 190},
		{name: "City Center Hostel", rating: 4.0, basePrice: 120},
	},
	"PAR": {
		{name: "Hotel de Luxe", rating: 4.9, basePrice: 320},
		{name: "Marais Boutique", rating: 4.6, basePrice: 240},
		{name: "Left Bank Budget", rating: 4.1, basePrice: 140},
	},
}

// fallbackCity serves unrecognized city codes. Deliberate contract: an
// unknown city still returns three results, never an empty list.
const fallbackCity = "NYC"

var mockAmenities = []string{"WiFi", "Gym", "Restaurant", "Pool"}

// GenerateMock returns the city's three-hotel catalog priced for the stay.
func GenerateMock(q SearchQuery) []Result {
	entries, ok := mockCatalog[q.CityCode]
	if !ok {
		entries = mockCatalog[fallbackCity]
	}

	results := make([]Result, 0, len(entries))
	for idx, e := range entries {
		rating := e.rating
		results = append(results, Result{
			ID:            fmt.Sprintf("HT-MOCK-%03d", idx+1),
			Name:          e.name,
			CityCode:      q.CityCode,
			CheckIn:       q.CheckIn,
			CheckOut:      q.CheckOut,
			Nights:        q.Nights,
			PricePerNight: e.basePrice,
			Price:         e.basePrice * q.Nights,
			TotalPrice:    e.basePrice * q.Nights,
			Rating:        &rating,
			Address:       fmt.Sprintf("%d Main St, %s, %s", 100+idx, q.CityCode, q.CityCode),
			Amenities:     mockAmenities,
		})
	}
	return results
}
