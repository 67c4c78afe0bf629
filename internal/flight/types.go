package flight

// Source reports which path produced a result set. The two paths are
// mutually exclusive per request.
type Source string

const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)

// SearchQuery is a validated, normalized flight search. Codes are uppercase,
// the date is YYYY-MM-DD, Passengers is in 1..9.
type SearchQuery struct {
	Origin      string
	Destination string
	Date        string
	Passengers  int
	SortBy      string
	MaxPrice    *int
	MaxStops    *int
}

// Result is the canonical flight offer shape, whatever the source.
// Prices are whole price units; TotalPrice is always PricePerPassenger
// multiplied by the passenger count.
type Result struct {
	ID                string `json:"id"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	Date              string `json:"date"`
	Departure         string `json:"departure"`
	Arrival           string `json:"arrival"`
	Duration          string `json:"duration"`
	Price             int    `json:"price"`
	Airline           string `json:"airline"`
	Stops             int    `json:"stops"`
	PricePerPassenger int    `json:"pricePerPassenger"`
	TotalPrice        int    `json:"totalPrice"`
}

// Summary aggregates the post-filter, post-sort result set.
// Every statistic is null on an empty set.
type Summary struct {
	MinPrice *int `json:"minPrice"`
	MaxPrice *int `json:"maxPrice"`
	AvgPrice *int `json:"avgPrice"`
	Count    int  `json:"count"`
}

// SearchResponse is the success envelope for GET /api/flights.
type SearchResponse struct {
	Success   bool     `json:"success"`
	Flights   []Result `json:"flights"`
	Source    Source   `json:"source"`
	Count     int      `json:"count"`
	Summary   Summary  `json:"summary"`
	Duration  string   `json:"duration"`
	Timestamp string   `json:"timestamp"`
}
