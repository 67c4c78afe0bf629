package flight

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

// OffersClient is the live-provider contract. Implementations must report
// every failure as an error; the service converts failures into mock data.
type OffersClient interface {
	SearchFlightOffers(ctx context.Context, params amadeus.FlightSearchParams) (*amadeus.FlightOffersResponse, error)
}

// Service runs the flight pipeline: source (live or mock), normalize,
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

// Outcome is a finished search: the post-processed result set plus the
// path that produced it.
type Outcome struct {
	Flights []Result
	Source  Source
	Summary Summary
}

// cachedResults is the cache payload: the pre-filter normalized set with
// its source tag. Filters and sort are recomputed per request.
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
		Flights: sorted,
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
				s.logger.Debug("flight cache hit", logger.Field{Key: "cache_key", Value: key})
				return payload.Results, payload.Source
			}
			s.logger.Warn("failed to unmarshal cached flights", logger.Field{Key: "cache_key", Value: key})
		}
	}

	results, source := s.fromProvider(ctx, q)

	if s.cache != nil {
		if raw, err := json.Marshal(cachedResults{Source: source, Results: results}); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
				s.logger.Warn("failed to cache flight results",
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

	resp, err := s.offers.SearchFlightOffers(ctx, amadeus.FlightSearchParams{
		OriginLocationCode:      q.Origin,
		DestinationLocationCode: q.Destination,
		DepartureDate:           q.Date,
		Adults:                  q.Passengers,
	})
	if err != nil {
		s.logger.Warn("live flight search failed, using mock data",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "route", Value: q.Origin + "->" + q.Destination},
		)
		return GenerateMock(q), SourceMock
	}

	return NormalizeOffers(resp.Data, q), SourceLive
}

// cacheKey is deterministic over the sourcing parameters only; filter and
// sort options do not fragment the cache.
func (s *Service) cacheKey(q SearchQuery) string {
	key := fmt.Sprintf("flight:%s:%s:%s:%d", q.Origin, q.Destination, q.Date, q.Passengers)
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}
