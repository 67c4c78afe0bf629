package flight

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ApplyFilters keeps results passing every active filter. Filters AND
// together; application order does not change the outcome.
func ApplyFilters(results []Result, q SearchQuery) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if q.MaxPrice != nil && r.PricePerPassenger > *q.MaxPrice {
			continue
		}
		if q.MaxStops != nil && r.Stops > *q.MaxStops {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// SortResults orders a copy of results by the requested key. Unrecognized
// keys silently fall back to the price default. Equal keys keep their
// relative input order.
func SortResults(results []Result, sortBy string) []Result {
	sorted := make([]Result, len(results))
	copy(sorted, results)

	switch strings.ToLower(sortBy) {
	case "duration":
		sort.SliceStable(sorted, func(i, j int) bool {
			return leadingInt(sorted[i].Duration) < leadingInt(sorted[j].Duration)
		})
	case "airline":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Airline < sorted[j].Airline
		})
	case "stops":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stops < sorted[j].Stops
		})
	default: // "price"
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PricePerPassenger < sorted[j].PricePerPassenger
		})
	}
	return sorted
}

// leadingInt parses the leading digits of a duration like "8h 15m".
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

// Summarize computes aggregate statistics over the final result set.
func Summarize(results []Result) Summary {
	summary := Summary{Count: len(results)}
	if len(results) == 0 {
		return summary
	}

	minPrice, maxPrice, sum := results[0].PricePerPassenger, results[0].PricePerPassenger, 0
	for _, r := range results {
		if r.PricePerPassenger < minPrice {
			minPrice = r.PricePerPassenger
		}
		if r.PricePerPassenger > maxPrice {
			maxPrice = r.PricePerPassenger
		}
		sum += r.PricePerPassenger
	}
	avg := int(math.Round(float64(sum) / float64(len(results))))

	summary.MinPrice = &minPrice
	summary.MaxPrice = &maxPrice
	summary.AvgPrice = &avg
	return summary
}
