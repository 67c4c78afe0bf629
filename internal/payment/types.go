package payment

import "encoding/json"

// CreateRequest is the JSON body of POST /api/create-payment.
// Amount is minor currency units (cents).
type CreateRequest struct {
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	BookingID string      `json:"bookingId"`
}

// Intent is a validated, normalized payment request: amount in 100..99999900,
// currency lowercased and supported, booking id at least 3 characters.
type Intent struct {
	Amount    int64
	Currency  string
	BookingID string
}

// Confirmation echoes what the provider accepted.
type Confirmation struct {
	ClientSecret    string
	PaymentIntentID string
	Amount          int64
	Currency        string
	BookingID       string
	Status          string
}

// CreateResponse is the success envelope for POST /api/create-payment.
type CreateResponse struct {
	Success         bool   `json:"success"`
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	BookingID       string `json:"bookingId"`
	Status          string `json:"status"`
	Duration        string `json:"duration"`
	Timestamp       string `json:"timestamp"`
}
