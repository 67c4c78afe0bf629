package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"myeagle/pkg/logger"
	"myeagle/pkg/stripe"
)

var (
	// ErrNotConfigured means no payment provider credentials exist.
	// Callers answer 503: an operator problem, not a client one.
	ErrNotConfigured = errors.New("payment provider not configured")

	// ErrProviderFailure means the configured provider rejected or failed
	// the delegated call. Callers answer 500.
	ErrProviderFailure = errors.New("payment provider call failed")
)

// IntentClient is the payment-provider contract.
type IntentClient interface {
	CreatePaymentIntent(ctx context.Context, params stripe.IntentParams) (*stripe.PaymentIntent, error)
}

// Service delegates validated payment requests to the configured provider.
type Service struct {
	intents IntentClient // nil when no provider is configured
	logger  logger.Client
	now     func() time.Time
}

func NewService(intents IntentClient, logger logger.Client) *Service {
	return &Service{
		intents: intents,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateIntent delegates the intent to the provider. The two failure modes
// stay distinct: ErrNotConfigured when there is no provider at all,
// ErrProviderFailure when the delegated call fails.
func (s *Service) CreateIntent(ctx context.Context, intent Intent) (*Confirmation, error) {
	if s.intents == nil {
		return nil, ErrNotConfigured
	}

	created, err := s.intents.CreatePaymentIntent(ctx, stripe.IntentParams{
		Amount:   intent.Amount,
		Currency: intent.Currency,
		Metadata: map[string]string{
			"bookingId": intent.BookingID,
			"createdAt": s.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		s.logger.Error("payment intent creation failed",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "booking_id", Value: intent.BookingID},
		)
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	s.logger.Info("payment intent created",
		logger.Field{Key: "payment_intent_id", Value: created.ID},
		logger.Field{Key: "booking_id", Value: intent.BookingID},
	)

	return &Confirmation{
		ClientSecret:    created.ClientSecret,
		PaymentIntentID: created.ID,
		Amount:          created.Amount,
		Currency:        strings.ToUpper(created.Currency),
		BookingID:       intent.BookingID,
		Status:          created.Status,
	}, nil
}
