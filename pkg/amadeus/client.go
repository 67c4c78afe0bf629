package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"myeagle/pkg/logger"
)

// Client calls the live travel-search provider. Construct it only when
// credentials are configured; callers fall back to mock data otherwise.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       logger.Client
}

func NewClient(httpClient *http.Client, baseURL, clientID, clientSecret string, logger logger.Client) *Client {
	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

type FlightSearchParams struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	Adults                  int
}

type HotelSearchParams struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Adults       int
}

func (c *Client) SearchFlightOffers(ctx context.Context, params FlightSearchParams) (*FlightOffersResponse, error) {
	q := url.Values{}
	q.Set("originLocationCode", params.OriginLocationCode)
	q.Set("destinationLocationCode", params.DestinationLocationCode)
	q.Set("departureDate", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))

	var resp FlightOffersResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", q, &resp); err != nil {
		return nil, fmt.Errorf("amadeus: flight offers search failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) SearchHotelOffers(ctx context.Context, params HotelSearchParams) (*HotelOffersResponse, error) {
	q := url.Values{}
	q.Set("cityCode", params.CityCode)
	q.Set("checkInDate", params.CheckInDate)
	q.Set("checkOutDate", params.CheckOutDate)
	q.Set("adults", strconv.Itoa(params.Adults))

	var resp HotelOffersResponse
	if err := c.get(ctx, "/v3/shopping/hotel-offers", q, &resp); err != nil {
		return nil, fmt.Errorf("amadeus: hotel offers search failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	r.Header.Set("Accept", "application/json")
	r.Header.Set("X-Client-Id", c.clientID)
	r.Header.Set("X-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("external api returned non-200 status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode json response: %w", err)
	}

	return nil
}
