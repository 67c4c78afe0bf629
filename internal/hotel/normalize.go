package hotel

import (
	"fmt"
	"math"
	"strconv"

	"myeagle/pkg/amadeus"
)

const liveResultCap = 10

// NormalizeOffers maps raw provider hotel offers into the canonical Result
// shape. Missing sub-fields degrade to sentinel values; per-night and
// total prices stay consistent whatever the source reported.
func NormalizeOffers(offers []amadeus.HotelOffer, q SearchQuery) []Result {
	if len(offers) > liveResultCap {
		offers = offers[:liveResultCap]
	}

	results := make([]Result, 0, len(offers))
	for idx, offer := range offers {
		total := 0
		if len(offer.Offers) > 0 {
			if p, err := strconv.ParseFloat(offer.Offers[0].Price.Total, 64); err == nil {
				total = int(math.Round(p))
			}
		}

		// Per-night is derived once and the total recomputed from it, so
		// total == perNight * nights holds for live results too.
		perNight := 0
		if q.Nights > 0 {
			perNight = int(math.Round(float64(total) / float64(q.Nights)))
		}
		total = perNight * q.Nights

		id := offer.Hotel.HotelID
		if id == "" {
			id = fmt.Sprintf("HT-%03d", idx+1)
		}

		name := offer.Hotel.Name
		if name == "" {
			name = "Unknown Hotel"
		}

		var rating *float64
		if r, err := strconv.ParseFloat(offer.Hotel.Rating, 64); err == nil {
			rating = &r
		}

		address := offer.Hotel.Address.Text
		if address == "" {
			address = "Address not available"
		}

		results = append(results, Result{
			ID:            id,
			Name:          name,
			CityCode:      q.CityCode,
			CheckIn:       q.CheckIn,
			CheckOut:      q.CheckOut,
			Nights:        q.Nights,
			PricePerNight: perNight,
			Price:         total,
			TotalPrice:    total,
			Rating:        rating,
			Address:       address,
		})
	}
	return results
}
