package flight

import (
	"fmt"
	"math"
	"strconv"

	"myeagle/pkg/amadeus"
)

// liveResultCap bounds how many raw provider offers are normalized.
const liveResultCap = 10

// NormalizeOffers maps raw provider offers into the canonical Result shape.
// Missing sub-fields degrade to sentinel values instead of failing the
// request. At most liveResultCap offers are kept.
func NormalizeOffers(offers []amadeus.FlightOffer, q SearchQuery) []Result {
	if len(offers) > liveResultCap {
		offers = offers[:liveResultCap]
	}

	results := make([]Result, 0, len(offers))
	for idx, offer := range offers {
		price := 0
		if p, err := strconv.ParseFloat(offer.Price.Total, 64); err == nil {
			price = int(math.Round(p))
		}

		airline := "Unknown"
		duration := "Unknown"
		departure := "TBD"
		arrival := "TBD"
		stops := 0

		if len(offer.Itineraries) > 0 {
			itin := offer.Itineraries[0]
			if itin.Duration != "" {
				duration = itin.Duration
			}
			if n := len(itin.Segments); n > 0 {
				stops = n - 1
				first, last := itin.Segments[0], itin.Segments[n-1]
				if first.CarrierCode != "" {
					airline = first.CarrierCode
				}
				if first.Departure.At != "" {
					departure = first.Departure.At
				}
				if last.Arrival.At != "" {
					arrival = last.Arrival.At
				}
			}
		}

		id := offer.ID
		if id == "" {
			id = fmt.Sprintf("FL-%03d", idx+1)
		}

		results = append(results, Result{
			ID:                id,
			Origin:            q.Origin,
			Destination:       q.Destination,
			Date:              q.Date,
			Departure:         departure,
			Arrival:           arrival,
			Duration:          duration,
			Price:             price,
			Airline:           airline,
			Stops:             stops,
			PricePerPassenger: price,
			TotalPrice:        price * q.Passengers,
		})
	}
	return results
}
