package flight

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"myeagle/pkg/amadeus"
	"myeagle/pkg/logger"
)

// MockOffersClient is a mock implementation of OffersClient
type MockOffersClient struct {
	mock.Mock
}

func (m *MockOffersClient) SearchFlightOffers(ctx context.Context, params amadeus.FlightSearchParams) (*amadeus.FlightOffersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amadeus.FlightOffersResponse), args.Error(1)
}

// MockCache is a mock implementation of cache.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func testLogger() logger.Client {
	return logger.NewWithWriter("test", io.Discard)
}

func testQuery() SearchQuery {
	return SearchQuery{Origin: "TLV", Destination: "NYC", Date: "2026-06-01", Passengers: 2}
}

func TestService_Search(t *testing.T) {
	t.Run("live provider success", func(t *testing.T) {
		offers := new(MockOffersClient)
		offers.On("SearchFlightOffers", mock.Anything, amadeus.FlightSearchParams{
			OriginLocationCode:      "TLV",
			DestinationLocationCode: "NYC",
			DepartureDate:           "2026-06-01",
			Adults:                  2,
		}).Return(&amadeus.FlightOffersResponse{
			Data: []amadeus.FlightOffer{
				{ID: "L1", Price: amadeus.OfferPrice{Total: "550.00"}},
			},
		}, nil)

		svc := NewService(offers, nil, 5, testLogger())
		outcome := svc.Search(context.Background(), testQuery())

		assert.Equal(t, SourceLive, outcome.Source)
		require.Len(t, outcome.Flights, 1)
		assert.Equal(t, "L1", outcome.Flights[0].ID)
		assert.Equal(t, 1, outcome.Summary.Count)
		offers.AssertExpectations(t)
	})

	t.Run("provider failure falls back to mock", func(t *testing.T) {
		offers := new(MockOffersClient)
		offers.On("SearchFlightOffers", mock.Anything, mock.Anything).
			Return(nil, errors.New("upstream timeout"))

		svc := NewService(offers, nil, 5, testLogger())
		outcome := svc.Search(context.Background(), testQuery())

		assert.Equal(t, SourceMock, outcome.Source)
		assert.Len(t, outcome.Flights, 3)
	})

	t.Run("no provider configured uses mock", func(t *testing.T) {
		svc := NewService(nil, nil, 5, testLogger())
		outcome := svc.Search(context.Background(), testQuery())

		assert.Equal(t, SourceMock, outcome.Source)
		assert.Len(t, outcome.Flights, 3)
	})

	t.Run("filters and sort run after sourcing", func(t *testing.T) {
		svc := NewService(nil, nil, 5, testLogger())
		q := testQuery()
		maxStops := 0
		q.MaxStops = &maxStops
		q.SortBy = "price"

		outcome := svc.Search(context.Background(), q)

		require.Len(t, outcome.Flights, 2)
		assert.Equal(t, "FL-MOCK-001", outcome.Flights[0].ID)
		assert.Equal(t, "FL-MOCK-003", outcome.Flights[1].ID)
		require.NotNil(t, outcome.Summary.MinPrice)
		assert.Equal(t, 600, *outcome.Summary.MinPrice)
	})
}

func TestService_Cache(t *testing.T) {
	t.Run("hit skips the provider", func(t *testing.T) {
		cached, err := json.Marshal(cachedResults{
			Source:  SourceLive,
			Results: []Result{{ID: "CACHED-1", PricePerPassenger: 480, TotalPrice: 960}},
		})
		require.NoError(t, err)

		c := new(MockCache)
		c.On("Get", mock.Anything, mock.Anything).Return(string(cached), nil)

		offers := new(MockOffersClient)
		svc := NewService(offers, c, 5, testLogger())

		outcome := svc.Search(context.Background(), testQuery())

		assert.Equal(t, SourceLive, outcome.Source)
		require.Len(t, outcome.Flights, 1)
		assert.Equal(t, "CACHED-1", outcome.Flights[0].ID)
		offers.AssertNotCalled(t, "SearchFlightOffers", mock.Anything, mock.Anything)
	})

	t.Run("miss stores the fetched set with its source", func(t *testing.T) {
		c := new(MockCache)
		c.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis: nil"))
		c.On("Set", mock.Anything, mock.Anything, mock.Anything, 5*time.Minute).Return(nil)

		svc := NewService(nil, c, 5, testLogger())
		outcome := svc.Search(context.Background(), testQuery())

		assert.Equal(t, SourceMock, outcome.Source)
		c.AssertCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, 5*time.Minute)

		stored := c.Calls[len(c.Calls)-1].Arguments.String(2)
		var payload cachedResults
		require.NoError(t, json.Unmarshal([]byte(stored), &payload))
		assert.Equal(t, SourceMock, payload.Source)
		assert.Len(t, payload.Results, 3)
	})

	t.Run("corrupt cache entry falls through to sourcing", func(t *testing.T) {
		c := new(MockCache)
		c.On("Get", mock.Anything, mock.Anything).Return("{not json", nil)
		c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		svc := NewService(nil, c, 5, testLogger())
		outcome := svc.Search(context.Background(), testQuery())

		assert.Equal(t, SourceMock, outcome.Source)
		assert.Len(t, outcome.Flights, 3)
	})
}

func TestService_CacheKey(t *testing.T) {
	svc := NewService(nil, nil, 5, testLogger())

	base := testQuery()
	same := testQuery()
	same.SortBy = "duration"
	other := testQuery()
	other.Passengers = 3

	assert.Equal(t, svc.cacheKey(base), svc.cacheKey(same), "sort options do not fragment the cache")
	assert.NotEqual(t, svc.cacheKey(base), svc.cacheKey(other))
}
