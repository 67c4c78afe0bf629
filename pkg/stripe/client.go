package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"myeagle/pkg/logger"
)

// Client creates payment intents against the card-payment provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Client
}

func NewClient(httpClient *http.Client, baseURL, apiKey string, logger logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type IntentParams struct {
	Amount   int64  // minor currency units
	Currency string // lowercase ISO code
	Metadata map[string]string
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CreatePaymentIntent posts a form-encoded intent request, the wire format
// the payment provider expects.
func (c *Client) CreatePaymentIntent(ctx context.Context, params IntentParams) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	for k, v := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	u := c.baseURL + "/v1/payment_intents"
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to build request: %w", err)
	}
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, fmt.Errorf("stripe: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe: external api returned non-200 status: %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("stripe: failed to decode json response: %w", err)
	}

	return &intent, nil
}
