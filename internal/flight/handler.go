package flight

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
	router.GET("/api/flights", h.SearchHandler)
}

var requiredHints = map[string]string{
	"origin":      "3-letter airport code (e.g., TLV, NYC, LAX)",
	"destination": "3-letter airport code",
	"date":        "YYYY-MM-DD format",
	"passengers":  "number 1-9",
}

// SearchHandler godoc
// @Summary      Search available flights
// @Description  Validates the query, fetches live offers with mock fallback, then filters, sorts and summarizes
// @Tags         flights
// @Produce      json
// @Param        origin       query string true  "3-letter origin airport code"
// @Param        destination  query string true  "3-letter destination airport code"
// @Param        date         query string true  "Departure date (YYYY-MM-DD)"
// @Param        passengers   query int    false "Passenger count 1-9 (default 1)"
// @Param        sortBy       query string false "price, duration, airline, stops"
// @Param        maxPrice     query int    false "Maximum price per ticket"
// @Param        maxStops     query int    false "Maximum number of stops"
// @Success      200 {object} flight.SearchResponse
// @Failure      400 {object} envelope.ErrorResponse
// @Router       /api/flights [get]
func (h *Handler) SearchHandler(c *gin.Context) {
	start := time.Now()

	raw := RawSearchQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Passengers:  c.Query("passengers"),
		SortBy:      c.Query("sortBy"),
		MaxPrice:    c.Query("maxPrice"),
		MaxStops:    c.Query("maxStops"),
	}

	q, verr := ValidateSearch(raw, time.Now())
	if verr != nil {
		h.logger.Warn("flight search validation failed",
			logger.Field{Key: "error", Value: verr.Code},
			logger.Field{Key: "details", Value: verr.Details},
		)
		c.JSON(http.StatusBadRequest, envelope.ErrorResponse{
			Error:    verr.Code,
			Details:  verr.Details,
			Required: requiredHints,
			Received: map[string]string{
				"origin":      raw.Origin,
				"destination": raw.Destination,
				"date":        raw.Date,
				"passengers":  raw.Passengers,
			},
		})
		return
	}

	outcome := h.service.Search(c.Request.Context(), *q)

	c.JSON(http.StatusOK, SearchResponse{
		Success:   true,
		Flights:   outcome.Flights,
		Source:    outcome.Source,
		Count:     len(outcome.Flights),
		Summary:   outcome.Summary,
		Duration:  envelope.Elapsed(start),
		Timestamp: envelope.Timestamp(time.Now()),
	})
}
