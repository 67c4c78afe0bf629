package hotel

import (
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
	router.GET("/api/hotels", h.SearchHandler)
}

var requiredHints = map[string]string{
	"cityCode": "3-letter city code (e.g., NYC, LON, PAR)",
	"checkIn":  "YYYY-MM-DD format",
	"checkOut": "YYYY-MM-DD format (must be after checkIn)",
	"guests":   "number 1-9",
}

// SearchHandler godoc
// @Summary      Search available hotels
// @Description  Validates the query, fetches live offers with mock fallback, then filters, sorts and summarizes
// @Tags         hotels
// @Produce      json
// @Param        cityCode  query string true  "3-letter city code"
// @Param        checkIn   query string true  "Check-in date (YYYY-MM-DD)"
// @Param        checkOut  query string true  "Check-out date (YYYY-MM-DD)"
// @Param        guests    query int    false "Guest count 1-9 (default 1)"
// @Param        sortBy    query string false "price, rating, name"
// @Param        maxPrice  query int    false "Maximum price per night"
// @Param        minRating query number false "Minimum rating (1-5)"
// @Success      200 {object} hotel.SearchResponse
// @Failure      400 {object} envelope.ErrorResponse
// @Router       /api/hotels [get]
func (h *Handler) SearchHandler(c *gin.Context) {
	start := time.Now()

	raw := RawSearchQuery{
		CityCode:  c.Query("cityCode"),
		CheckIn:   c.Query("checkIn"),
		CheckOut:  c.Query("checkOut"),
		Guests:    c.Query("guests"),
		SortBy:    c.Query("sortBy"),
		MaxPrice:  c.Query("maxPrice"),
		MinRating: c.Query("minRating"),
	}

	q, verr := ValidateSearch(raw, time.Now())
	if verr != nil {
		h.logger.Warn("hotel search validation failed",
			logger.Field{Key: "error", Value: verr.Code},
			logger.Field{Key: "details", Value: verr.Details},
		)
		c.JSON(http.StatusBadRequest, envelope.ErrorResponse{
			Error:    verr.Code,
			Details:  verr.Details,
			Required: requiredHints,
			Received: map[string]string{
				"cityCode": raw.CityCode,
				"checkIn":  raw.CheckIn,
				"checkOut": raw.CheckOut,
				"guests":   raw.Guests,
			},
		})
		return
	}

	outcome := h.service.Search(c.Request.Context(), *q)

	c.JSON(http.StatusOK, SearchResponse{
		Success:   true,
		Hotels:    outcome.Hotels,
		Source:    outcome.Source,
		Count:     len(outcome.Hotels),
		Nights:    q.Nights,
		Summary:   outcome.Summary,
		Duration:  envelope.Elapsed(start),
		Timestamp: envelope.Timestamp(time.Now()),
	})
}
