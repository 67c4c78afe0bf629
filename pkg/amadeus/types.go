package amadeus

// Raw response shapes from the offers provider. Fields stay provider-shaped;
// mapping to domain results happens in the domain packages.

type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

type FlightOffer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       OfferPrice  `json:"price"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
}

type FlightEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"` // ISO-8601 local datetime
}

type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type HotelOffersResponse struct {
	Data []HotelOffer `json:"data"`
}

type HotelOffer struct {
	Hotel  HotelInfo   `json:"hotel"`
	Offers []RoomOffer `json:"offers"`
}

type HotelInfo struct {
	HotelID string       `json:"hotelId"`
	Name    string       `json:"name"`
	Rating  string       `json:"rating"`
	Address HotelAddress `json:"address"`
}

type HotelAddress struct {
	Text string `json:"text"`
}

type RoomOffer struct {
	Price OfferPrice `json:"price"`
}
