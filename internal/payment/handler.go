package payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myeagle/internal/envelope"
	"myeagle/pkg/logger"
)

type Handler struct {
	service *Service
	logger  logger.Client
}

func NewHandler(s *Service, logger logger.Client) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/create-payment", h.CreatePaymentHandler)
}

var requiredHints = map[string]string{
	"amount":    "positive integer in cents (e.g., 25000 = $250.00)",
	"currency":  "usd, eur, gbp, jpy, cad, aud",
	"bookingId": "unique string identifier",
}

// CreatePaymentHandler godoc
// @Summary      Create a payment intent for a booking
// @Description  Validates the request, delegates to the payment provider, returns the confirmation
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body payment.CreateRequest true "Payment details"
// @Success      200 {object} payment.CreateResponse
// @Failure      400 {object} envelope.ErrorResponse
// @Failure      503 {object} envelope.ErrorResponse
// @Router       /api/create-payment [post]
func (h *Handler) CreatePaymentHandler(c *gin.Context) {
	start := time.Now()

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.ErrorResponse{
			Error:      "Invalid JSON",
			Details:    err.Error(),
			Suggestion: "Verify your request body is valid JSON",
		})
		return
	}

	intent, verr := Validate(req)
	if verr != nil {
		h.logger.Warn("payment validation failed",
			logger.Field{Key: "error", Value: verr.Code},
			logger.Field{Key: "details", Value: verr.Details},
		)
		c.JSON(http.StatusBadRequest, envelope.ErrorResponse{
			Error:    verr.Code,
			Details:  verr.Details,
			Required: requiredHints,
			Received: map[string]string{
				"amount":    req.Amount.String(),
				"currency":  req.Currency,
				"bookingId": req.BookingID,
			},
		})
		return
	}

	confirmation, err := h.service.CreateIntent(c.Request.Context(), *intent)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			h.logger.Warn("payment provider not configured")
			c.JSON(http.StatusServiceUnavailable, envelope.ErrorResponse{
				Error:      "Payment service unavailable",
				Details:    "Stripe is not configured on this server",
				Suggestion: "Contact support to enable payment processing",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.ErrorResponse{
			Error:      "Failed to create payment intent",
			Details:    err.Error(),
			Suggestion: "Please verify payment details and try again. Contact support if error persists.",
		})
		return
	}

	c.JSON(http.StatusOK, CreateResponse{
		Success:         true,
		ClientSecret:    confirmation.ClientSecret,
		PaymentIntentID: confirmation.PaymentIntentID,
		Amount:          confirmation.Amount,
		Currency:        confirmation.Currency,
		BookingID:       confirmation.BookingID,
		Status:          confirmation.Status,
		Duration:        envelope.Elapsed(start),
		Timestamp:       envelope.Timestamp(time.Now()),
	})
}
