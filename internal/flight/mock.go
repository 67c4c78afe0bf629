package flight

// Synthetic offers served whenever the live provider is unavailable or
// fails. Deterministic: the same query always produces the same three
// offers, price-ordered by construction.

const mockBasePrice = 600

var mockAirlines = [...]string{"United Airlines", "El Al", "British Airways", "Lufthansa", "Air France"}

// GenerateMock returns exactly three synthetic offers for the query.
func GenerateMock(q SearchQuery) []Result {
	return []Result{
		{
			ID:                "FL-MOCK-001",
			Origin:            q.Origin,
			Destination:       q.Destination,
			Date:              q.Date,
			Departure:         "14:30",
			Arrival:           "22:45",
			Duration:          "8h 15m",
			Price:             mockBasePrice,
			Airline:           mockAirlines[0],
			Stops:             0,
			PricePerPassenger: mockBasePrice,
			TotalPrice:        mockBasePrice * q.Passengers,
		},
		{
			ID:                "FL-MOCK-002",
			Origin:            q.Origin,
			Destination:       q.Destination,
			Date:              q.Date,
			Departure:         "09:00",
			Arrival:           "18:30",
			Duration:          "9h 30m",
			Price:             mockBasePrice + 120,
			Airline:           mockAirlines[1],
			Stops:             1,
			PricePerPassenger: mockBasePrice + 120,
			TotalPrice:        (mockBasePrice + 120) * q.Passengers,
		},
		{
			ID:                "FL-MOCK-003",
			Origin:            q.Origin,
			Destination:       q.Destination,
			Date:              q.Date,
			Departure:         "11:15",
			Arrival:           "20:00",
			Duration:          "8h 45m",
			Price:             mockBasePrice + 80,
			Airline:           mockAirlines[2],
			Stops:             0,
			PricePerPassenger: mockBasePrice + 80,
			TotalPrice:        (mockBasePrice + 80) * q.Passengers,
		},
	}
}
