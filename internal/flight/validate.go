package flight

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"myeagle/internal/envelope"
)

// RawSearchQuery holds the query parameters exactly as received, pre-parse.
type RawSearchQuery struct {
	Origin      string
	Destination string
	Date        string
	Passengers  string
	SortBy      string
	MaxPrice    string
	MaxStops    string
}

const dateLayout = "2006-01-02"

var (
	iataRe = regexp.MustCompile(`^[A-Za-z]{3}$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateSearch checks a raw flight query and returns the normalized
// SearchQuery, or the validation verdict the handler turns into a 400.
// Dates are compared at day granularity against now.
func ValidateSearch(raw RawSearchQuery, now time.Time) (*SearchQuery, *envelope.ValidationError) {
	if raw.Origin == "" {
		return nil, &envelope.ValidationError{Code: "Missing origin", Details: "Origin airport code required (e.g., TLV)"}
	}
	if raw.Destination == "" {
		return nil, &envelope.ValidationError{Code: "Missing destination", Details: "Destination airport code required"}
	}
	if raw.Date == "" {
		return nil, &envelope.ValidationError{Code: "Missing date", Details: "Departure date required (YYYY-MM-DD)"}
	}

	if !iataRe.MatchString(strings.TrimSpace(raw.Origin)) {
		return nil, &envelope.ValidationError{Code: "Invalid origin", Details: "Origin must be 3-letter code (e.g., TLV, NYC)"}
	}
	if !iataRe.MatchString(strings.TrimSpace(raw.Destination)) {
		return nil, &envelope.ValidationError{Code: "Invalid destination", Details: "Destination must be 3-letter code"}
	}

	searchDate, verr := parseDay(raw.Date, "Use YYYY-MM-DD (e.g., 2026-12-25)")
	if verr != nil {
		return nil, verr
	}

	today := dayOf(now)
	if searchDate.Before(today) {
		return nil, &envelope.ValidationError{Code: "Date in past", Details: "Departure date must be in the future"}
	}
	if searchDate.After(today.AddDate(2, 0, 0)) {
		return nil, &envelope.ValidationError{Code: "Date too far", Details: "Maximum booking window is 2 years"}
	}

	// Absent passenger count defaults to 1; a present but unparseable or
	// out-of-range one rejects the whole request, no clamping.
	passengers := 1
	if raw.Passengers != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw.Passengers))
		if err != nil || n < 1 || n > 9 {
			return nil, &envelope.ValidationError{Code: "Invalid passengers", Details: "Passenger count must be 1-9"}
		}
		passengers = n
	}

	q := &SearchQuery{
		Origin:      strings.ToUpper(strings.TrimSpace(raw.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(raw.Destination)),
		Date:        raw.Date,
		Passengers:  passengers,
		SortBy:      raw.SortBy,
	}

	// Unparseable optional filters are ignored, like an unrecognized sortBy.
	if raw.MaxPrice != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(raw.MaxPrice)); err == nil {
			q.MaxPrice = &n
		}
	}
	if raw.MaxStops != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(raw.MaxStops)); err == nil {
			q.MaxStops = &n
		}
	}

	return q, nil
}

func parseDay(value, formatHint string) (time.Time, *envelope.ValidationError) {
	if !dateRe.MatchString(value) {
		return time.Time{}, &envelope.ValidationError{Code: "Invalid date format", Details: formatHint}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &envelope.ValidationError{Code: "Invalid date format", Details: formatHint}
	}
	return t, nil
}

func dayOf(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
