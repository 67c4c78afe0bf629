package hotel

import (
	"math"
	"sort"
	"strings"
)

// ApplyFilters keeps results passing every active filter. When minRating
// is active, results with a null rating are dropped, not retained.
func ApplyFilters(results []Result, q SearchQuery) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if q.MaxPrice != nil && r.PricePerNight > *q.MaxPrice {
			continue
		}
		if q.MinRating != nil && (r.Rating == nil || *r.Rating < *q.MinRating) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// SortResults orders a copy of results by the requested key. Rating sorts
// descending with null ratings last; unrecognized keys silently fall back
// to the price default. Equal keys keep their relative input order.
func SortResults(results []Result, sortBy string) []Result {
	sorted := make([]Result, len(results))
	copy(sorted, results)

	switch strings.ToLower(sortBy) {
	case "rating":
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratingOrZero(sorted[i]) > ratingOrZero(sorted[j])
		})
	case "name":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	default: // "price"
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PricePerNight < sorted[j].PricePerNight
		})
	}
	return sorted
}

func ratingOrZero(r Result) float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// Summarize computes aggregate statistics over the final result set.
// Rating statistics cover non-null ratings only.
func Summarize(results []Result) Summary {
	var summary Summary
	if len(results) == 0 {
		return summary
	}

	minPrice, maxPrice, sum := results[0].PricePerNight, results[0].PricePerNight, 0
	for _, r := range results {
		if r.PricePerNight < minPrice {
			minPrice = r.PricePerNight
		}
		if r.PricePerNight > maxPrice {
			maxPrice = r.PricePerNight
		}
		sum += r.PricePerNight
	}
	avgPrice := int(math.Round(float64(sum) / float64(len(results))))
	summary.MinPrice = &minPrice
	summary.MaxPrice = &maxPrice
	summary.AvgPrice = &avgPrice

	var ratings []float64
	for _, r := range results {
		if r.Rating != nil {
			ratings = append(ratings, *r.Rating)
		}
	}
	if len(ratings) == 0 {
		return summary
	}

	minRating, maxRating, ratingSum := ratings[0], ratings[0], 0.0
	for _, r := range ratings {
		if r < minRating {
			minRating = r
		}
		if r > maxRating {
			maxRating = r
		}
		ratingSum += r
	}
	avgRating := math.Round(ratingSum/float64(len(ratings))*10) / 10
	summary.MinRating = &minRating
	summary.MaxRating = &maxRating
	summary.AvgRating = &avgRating

	return summary
}
