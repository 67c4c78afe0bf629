package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// Standalone fake offers provider for local development. Point
// AMADEUS_BASE_URL at this server (with any non-empty credentials) to
// exercise the live search path without network access.

func main() {
	port := "8081"
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/v2/shopping/flight-offers", FlightOffersHandler)
	http.HandleFunc("/v3/shopping/hotel-offers", HotelOffersHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Provider mock running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	origin := r.URL.Query().Get("originLocationCode")
	destination := r.URL.Query().Get("destinationLocationCode")
	date := r.URL.Query().Get("departureDate")

	resp := map[string]any{
		"data": []map[string]any{
			{
				"id": "1",
				"itineraries": []map[string]any{
					{
						"duration": "PT8H15M",
						"segments": []map[string]any{
							{
								"departure":   map[string]string{"iataCode": origin, "at": date + "T14:30:00"},
								"arrival":     map[string]string{"iataCode": destination, "at": date + "T22:45:00"},
								"carrierCode": "UA",
							},
						},
					},
				},
				"price": map[string]string{"total": "612.40", "currency": "USD"},
			},
			{
				"id": "2",
				"itineraries": []map[string]any{
					{
						"duration": "PT11H05M",
						"segments": []map[string]any{
							{
								"departure":   map[string]string{"iataCode": origin, "at": date + "T06:10:00"},
								"arrival":     map[string]string{"iataCode": "FRA", "at": date + "T12:40:00"},
								"carrierCode": "LH",
							},
							{
								"departure":   map[string]string{"iataCode": "FRA", "at": date + "T14:05:00"},
								"arrival":     map[string]string{"iataCode": destination, "at": date + "T17:15:00"},
								"carrierCode": "LH",
							},
						},
					},
				},
				"price": map[string]string{"total": "548.00", "currency": "USD"},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func HotelOffersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	city := r.URL.Query().Get("cityCode")

	resp := map[string]any{
		"data": []map[string]any{
			{
				"hotel": map[string]any{
					"hotelId": "HLNYC482",
					"name":    "Midtown Plaza Hotel",
					"rating":  "4",
					"address": map[string]string{"text": "485 7th Ave, " + city},
				},
				"offers": []map[string]any{
					{"price": map[string]string{"total": "1240.00", "currency": "USD"}},
				},
			},
			{
				"hotel": map[string]any{
					"hotelId": "HLNYC105",
					"name":    "Harbor View Suites",
					"rating":  "5",
					"address": map[string]string{"text": "2 Water St, " + city},
				},
				"offers": []map[string]any{
					{"price": map[string]string{"total": "1995.00", "currency": "USD"}},
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode response: %v", err)
	}
}
