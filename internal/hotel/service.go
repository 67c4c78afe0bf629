package hotel

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"myeagle/pkg/amadeus"
	"myeagle/pkg/cache"
	"myeagle/pkg/logger"
)

// OffersClient is the live-provider contract for hotel offers.
type OffersClient interface {
	SearchHotelOffers(ctx context.Context, params amadeus.HotelSearchParams) (*amadeus.HotelOffersResponse, error)
}

// Service runs the hotel pipeline: source (live or mock), normalize,
// filter, sort, summarize.
type Service struct {
	offers OffersClient // nil when no provider is configured
	cache  cache.Cache  // nil when caching is disabled
	ttl    time.Duration
	logger logger.Client
}

func NewService(offers OffersClient, cache cache.Cache, ttlMinutes int, logger logger.Client) *Service {
	return &Service{
		offers: offers,
		cache:  cache,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: logger,
	}
}

type Outcome struct {
	Hotels  []Result
	Source  Source
	Summary Summary
}

type cachedResults struct {
	Source  Source   `json:"source"`
	Results []Result `json:"results"`
}

// Search never fails: a provider error degrades to mock data and the
// request completes.
func (s *Service) Search(ctx context.Context, q SearchQuery) Outcome {
	results, source := s.fetch(ctx, q)

	filtered := ApplyFilters(results, q)
	sorted := SortResults(filtered, q.SortBy)

	return Outcome{
		Hotels:  sorted,
		Source:  source,
		Summary: Summarize(sorted),
	}
}

func (s *Service) fetch(ctx context.Context, q SearchQuery) ([]Result, Source) {
	key := s.cacheKey(q)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var payload cachedResults
			if err := json.Unmarshal([]byte(cached), &payload); err == nil {
				s.logger.Debug("hotel cache hit", logger.Field{Key: "cache_key", Value: key})
				return payload.Results, payload.Source
			}
			s.logger.Warn("failed to unmarshal cached hotels", logger.Field{Key: "cache_key", Value: key})
		}
	}

	results, source := s.fromProvider(ctx, q)

	if s.cache != nil {
		if raw, err := json.Marshal(cachedResults{Source: source, Results: results}); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
				s.logger.Warn("failed to cache hotel results",
					logger.Field{Key: "err", Value: err},
					logger.Field{Key: "cache_key", Value: key},
				)
			}
		}
	}

	return results, source
}

func (s *Service) fromProvider(ctx context.Context, q SearchQuery) ([]Result, Source) {
	if s.offers == nil {
		return GenerateMock(q), SourceMock
	}

	resp, err := s.offers.SearchHotelOffers(ctx, amadeus.HotelSearchParams{
		CityCode:     q.CityCode,
		CheckInDate:  q.CheckIn,
		CheckOutDate: q.CheckOut,
		Adults:       q.Guests,
	})
	if err != nil {
		s.logger.Warn("live hotel search failed, using mock data",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "city", Value: q.CityCode},
		)
		return GenerateMock(q), SourceMock
	}

	return NormalizeOffers(resp.Data, q), SourceLive
}

func (s *Service) cacheKey(q SearchQuery) string {
	key := fmt.Sprintf("hotel:%s:%s:%s:%d", q.CityCode, q.CheckIn, q.CheckOut, q.Guests)
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("hotel:search:%x", hash[:16])
}
