package payment

import (
	"strconv"
	"strings"

	"myeagle/internal/envelope"
)

const (
	minAmount = 100
	maxAmount = 99_999_900
)

var supportedCurrencies = map[string]bool{
	"usd": true, "eur": true, "gbp": true, "jpy": true, "cad": true, "aud": true,
}

// Validate checks a raw payment request and returns the normalized Intent,
// or the validation verdict the handler turns into a 400. An absent
// currency defaults to usd.
func Validate(req CreateRequest) (*Intent, *envelope.ValidationError) {
	if req.Amount == "" {
		return nil, &envelope.ValidationError{Code: "Missing amount", Details: "Amount in cents required (e.g., 25000)"}
	}
	if req.BookingID == "" {
		return nil, &envelope.ValidationError{Code: "Missing bookingId", Details: "Unique booking ID required"}
	}

	amount, err := strconv.ParseInt(req.Amount.String(), 10, 64)
	if err != nil || amount < minAmount {
		return nil, &envelope.ValidationError{Code: "Invalid amount", Details: "Minimum amount is 100 cents ($1.00)"}
	}
	if amount > maxAmount {
		return nil, &envelope.ValidationError{Code: "Amount too large", Details: "Maximum amount is 999,999.00"}
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "usd"
	}
	if !supportedCurrencies[currency] {
		return nil, &envelope.ValidationError{Code: "Invalid currency", Details: "Supported: usd, eur, gbp, jpy, cad, aud"}
	}

	if len(req.BookingID) < 3 {
		return nil, &envelope.ValidationError{Code: "Invalid bookingId", Details: "Booking ID must be 3+ characters"}
	}

	return &Intent{
		Amount:    amount,
		Currency:  currency,
		BookingID: req.BookingID,
	}, nil
}
