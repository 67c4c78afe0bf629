package hotel

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"myeagle/internal/envelope"
)

// RawSearchQuery holds the query parameters exactly as received, pre-parse.
type RawSearchQuery struct {
	CityCode  string
	CheckIn   string
	CheckOut  string
	Guests    string
	SortBy    string
	MaxPrice  string
	MinRating string
}

const (
	dateLayout = "2006-01-02"
	maxStay    = 90
)

var (
	cityRe = regexp.MustCompile(`^[A-Za-z]{3}$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateSearch checks a raw hotel query and returns the normalized
// SearchQuery with the derived night count, or the validation verdict the
// handler turns into a 400. Dates are compared at day granularity.
func ValidateSearch(raw RawSearchQuery, now time.Time) (*SearchQuery, *envelope.ValidationError) {
	if raw.CityCode == "" {
		return nil, &envelope.ValidationError{Code: "Missing cityCode", Details: "City code required (e.g., NYC)"}
	}
	if raw.CheckIn == "" {
		return nil, &envelope.ValidationError{Code: "Missing checkIn", Details: "Check-in date required (YYYY-MM-DD)"}
	}
	if raw.CheckOut == "" {
		return nil, &envelope.ValidationError{Code: "Missing checkOut", Details: "Check-out date required (YYYY-MM-DD)"}
	}

	if !cityRe.MatchString(strings.TrimSpace(raw.CityCode)) {
		return nil, &envelope.ValidationError{Code: "Invalid cityCode", Details: "City code must be 3 letters (e.g., NYC, LON)"}
	}

	checkIn, verr := parseDay(raw.CheckIn, "Invalid checkIn format", "Use YYYY-MM-DD (e.g., 2026-12-20)")
	if verr != nil {
		return nil, verr
	}
	checkOut, verr := parseDay(raw.CheckOut, "Invalid checkOut format", "Use YYYY-MM-DD (e.g., 2026-12-25)")
	if verr != nil {
		return nil, verr
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return nil, &envelope.ValidationError{Code: "Check-in in past", Details: "Check-in date must be in the future"}
	}
	if !checkOut.After(checkIn) {
		return nil, &envelope.ValidationError{Code: "Invalid date range", Details: "Check-out must be after check-in"}
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights > maxStay {
		return nil, &envelope.ValidationError{Code: "Stay too long", Details: "Maximum stay is 90 days"}
	}

	guests := 1
	if raw.Guests != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw.Guests))
		if err != nil || n < 1 || n > 9 {
			return nil, &envelope.ValidationError{Code: "Invalid guests", Details: "Guest count must be 1-9"}
		}
		guests = n
	}

	q := &SearchQuery{
		CityCode: strings.ToUpper(strings.TrimSpace(raw.CityCode)),
		CheckIn:  raw.CheckIn,
		CheckOut: raw.CheckOut,
		Guests:   guests,
		Nights:   nights,
		SortBy:   raw.SortBy,
	}

	// Unparseable optional filters are ignored.
	if raw.MaxPrice != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(raw.MaxPrice)); err == nil {
			q.MaxPrice = &n
		}
	}
	if raw.MinRating != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw.MinRating), 64); err == nil {
			q.MinRating = &f
		}
	}

	return q, nil
}

func parseDay(value, code, formatHint string) (time.Time, *envelope.ValidationError) {
	if !dateRe.MatchString(value) {
		return time.Time{}, &envelope.ValidationError{Code: code, Details: formatHint}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &envelope.ValidationError{Code: code, Details: formatHint}
	}
	return t, nil
}
