package hotel

// Source reports which path produced a result set.
type Source string

const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)

// SearchQuery is a validated, normalized hotel search. CityCode is
// uppercase, dates are YYYY-MM-DD with CheckOut strictly after CheckIn,
// Guests is in 1..9 and Nights in 1..90.
type SearchQuery struct {
	CityCode  string
	CheckIn   string
	CheckOut  string
	Guests    int
	Nights    int
	SortBy    string
	MaxPrice  *int
	MinRating *float64
}

// Result is the canonical hotel offer shape, whatever the source.
// TotalPrice is always PricePerNight multiplied by Nights; Rating is
// null when the source has none.
type Result struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CityCode      string   `json:"cityCode"`
	CheckIn       string   `json:"checkIn"`
	CheckOut      string   `json:"checkOut"`
	Nights        int      `json:"nights"`
	PricePerNight int      `json:"pricePerNight"`
	Price         int      `json:"price"`
	TotalPrice    int      `json:"totalPrice"`
	Rating        *float64 `json:"rating"`
	Address       string   `json:"address"`
	Amenities     []string `json:"amenities,omitempty"`
}

// Summary aggregates the post-filter, post-sort result set. Rating
// statistics cover non-null ratings only; everything is null on empty.
type Summary struct {
	MinPrice  *int     `json:"minPrice"`
	MaxPrice  *int     `json:"maxPrice"`
	AvgPrice  *int     `json:"avgPrice"`
	MinRating *float64 `json:"minRating"`
	MaxRating *float64 `json:"maxRating"`
	AvgRating *float64 `json:"avgRating"`
}

// SearchResponse is the success envelope for GET /api/hotels.
type SearchResponse struct {
	Success   bool     `json:"success"`
	Hotels    []Result `json:"hotels"`
	Source    Source   `json:"source"`
	Count     int      `json:"count"`
	Nights    int      `json:"nights"`
	Summary   Summary  `json:"summary"`
	Duration  string   `json:"duration"`
	Timestamp string   `json:"timestamp"`
}
