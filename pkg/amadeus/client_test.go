package amadeus

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myeagle/pkg/logger"
)

func newTestClient(serverURL string) *Client {
	return NewClient(http.DefaultClient, serverURL, "client-id", "client-secret", logger.NewWithWriter("test", io.Discard))
}

func TestSearchFlightOffers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/shopping/flight-offers", r.URL.Path)
			assert.Equal(t, "TLV", r.URL.Query().Get("originLocationCode"))
			assert.Equal(t, "NYC", r.URL.Query().Get("destinationLocationCode"))
			assert.Equal(t, "2026-06-01", r.URL.Query().Get("departureDate"))
			assert.Equal(t, "2", r.URL.Query().Get("adults"))
			assert.Equal(t, "client-id", r.Header.Get("X-Client-Id"))
			assert.Equal(t, "client-secret", r.Header.Get("X-Client-Secret"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"id":"1","price":{"total":"612.40","currency":"USD"}}]}`))
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).SearchFlightOffers(context.Background(), FlightSearchParams{
			OriginLocationCode:      "TLV",
			DestinationLocationCode: "NYC",
			DepartureDate:           "2026-06-01",
			Adults:                  2,
		})

		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "1", resp.Data[0].ID)
		assert.Equal(t, "612.40", resp.Data[0].Price.Total)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SearchFlightOffers(context.Background(), FlightSearchParams{Adults: 1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": [`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SearchFlightOffers(context.Background(), FlightSearchParams{Adults: 1})

		assert.Error(t, err)
	})
}

func TestSearchHotelOffers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/shopping/hotel-offers", r.URL.Path)
		assert.Equal(t, "NYC", r.URL.Query().Get("cityCode"))
		assert.Equal(t, "2026-06-01", r.URL.Query().Get("checkInDate"))
		assert.Equal(t, "2026-06-05", r.URL.Query().Get("checkOutDate"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"hotel":{"hotelId":"H1","name":"Test Hotel","rating":"4"},"offers":[{"price":{"total":"800.00","currency":"USD"}}]}]}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).SearchHotelOffers(context.Background(), HotelSearchParams{
		CityCode:     "NYC",
		CheckInDate:  "2026-06-01",
		CheckOutDate: "2026-06-05",
		Adults:       2,
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "H1", resp.Data[0].Hotel.HotelID)
	require.Len(t, resp.Data[0].Offers, 1)
	assert.Equal(t, "800.00", resp.Data[0].Offers[0].Price.Total)
}
