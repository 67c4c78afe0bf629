package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []Result {
	return []Result{
		{ID: "A", PricePerPassenger: 700, Stops: 1, Duration: "9h 30m", Airline: "El Al"},
		{ID: "B", PricePerPassenger: 600, Stops: 0, Duration: "8h 15m", Airline: "United Airlines"},
		{ID: "C", PricePerPassenger: 600, Stops: 2, Duration: "12h 05m", Airline: "British Airways"},
	}
}

func TestApplyFilters(t *testing.T) {
	t.Run("maxPrice keeps results at or under the limit", func(t *testing.T) {
		maxPrice := 600
		filtered := ApplyFilters(sampleResults(), SearchQuery{MaxPrice: &maxPrice})

		require.Len(t, filtered, 2)
		assert.Equal(t, "B", filtered[0].ID)
		assert.Equal(t, "C", filtered[1].ID)
	})

	t.Run("maxStops drops connections above the limit", func(t *testing.T) {
		maxStops := 0
		filtered := ApplyFilters(sampleResults(), SearchQuery{MaxStops: &maxStops})

		require.Len(t, filtered, 1)
		assert.Equal(t, "B", filtered[0].ID)
	})

	t.Run("filters compose", func(t *testing.T) {
		maxPrice, maxStops := 700, 1
		q := SearchQuery{MaxPrice: &maxPrice, MaxStops: &maxStops}
		filtered := ApplyFilters(sampleResults(), q)

		require.Len(t, filtered, 2)
		assert.Equal(t, "A", filtered[0].ID)
		assert.Equal(t, "B", filtered[1].ID)

		// Second application is a no-op.
		assert.Equal(t, filtered, ApplyFilters(filtered, q))
	})

	t.Run("no active filters keeps everything", func(t *testing.T) {
		assert.Len(t, ApplyFilters(sampleResults(), SearchQuery{}), 3)
	})
}

func TestSortResults(t *testing.T) {
	t.Run("price is the default", func(t *testing.T) {
		sorted := SortResults(sampleResults(), "")
		assert.Equal(t, []string{"B", "C", "A"}, ids(sorted))
	})

	t.Run("unrecognized key falls back to price", func(t *testing.T) {
		assert.Equal(t, SortResults(sampleResults(), "price"), SortResults(sampleResults(), "departure"))
	})

	t.Run("equal prices keep input order", func(t *testing.T) {
		sorted := SortResults(sampleResults(), "price")
		assert.Equal(t, "B", sorted[0].ID, "B precedes C in the input at the same price")
		assert.Equal(t, "C", sorted[1].ID)
	})

	t.Run("duration compares leading hours", func(t *testing.T) {
		sorted := SortResults(sampleResults(), "duration")
		assert.Equal(t, []string{"B", "A", "C"}, ids(sorted))
	})

	t.Run("airline is lexicographic", func(t *testing.T) {
		sorted := SortResults(sampleResults(), "airline")
		assert.Equal(t, []string{"C", "A", "B"}, ids(sorted))
	})

	t.Run("stops ascending", func(t *testing.T) {
		sorted := SortResults(sampleResults(), "stops")
		assert.Equal(t, []string{"B", "A", "C"}, ids(sorted))
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		in := sampleResults()
		SortResults(in, "price")
		assert.Equal(t, []string{"A", "B", "C"}, ids(in))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty set yields null statistics", func(t *testing.T) {
		s := Summarize(nil)

		assert.Equal(t, 0, s.Count)
		assert.Nil(t, s.MinPrice)
		assert.Nil(t, s.MaxPrice)
		assert.Nil(t, s.AvgPrice)
	})

	t.Run("min max avg over per-passenger prices", func(t *testing.T) {
		s := Summarize(sampleResults())

		assert.Equal(t, 3, s.Count)
		require.NotNil(t, s.MinPrice)
		assert.Equal(t, 600, *s.MinPrice)
		require.NotNil(t, s.MaxPrice)
		assert.Equal(t, 700, *s.MaxPrice)
		require.NotNil(t, s.AvgPrice)
		assert.Equal(t, 633, *s.AvgPrice)
	})
}

func ids(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}
