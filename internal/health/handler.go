package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myeagle/internal/envelope"
)

const (
	serviceName = "MyEagle Travel Booking API"
	version     = "1.0.0"
)

// Handler reports whether each upstream provider is live or mocked and
// enumerates the primary endpoint shapes.
type Handler struct {
	searchLive      bool
	paymentsEnabled bool
	started         time.Time
}

func NewHandler(searchLive, paymentsEnabled bool) *Handler {
	return &Handler{
		searchLive:      searchLive,
		paymentsEnabled: paymentsEnabled,
		started:         time.Now(),
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.StatusHandler)
}

type StatusResponse struct {
	Success   bool              `json:"success"`
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Uptime    float64           `json:"uptime"`
	Services  map[string]string `json:"services"`
	Endpoints map[string]string `json:"endpoints"`
}

// StatusHandler godoc
// @Summary      Health check
// @Description  Reports provider modes and the primary endpoint shapes
// @Tags         health
// @Produce      json
// @Success      200 {object} health.StatusResponse
// @Router       / [get]
func (h *Handler) StatusHandler(c *gin.Context) {
	searchMode := "mock"
	if h.searchLive {
		searchMode = "live"
	}
	paymentMode := "disabled"
	if h.paymentsEnabled {
		paymentMode = "enabled"
	}

	c.JSON(http.StatusOK, StatusResponse{
		Success:   true,
		Status:    "ok",
		Service:   serviceName,
		Version:   version,
		Timestamp: envelope.Timestamp(time.Now()),
		Uptime:    time.Since(h.started).Seconds(),
		Services: map[string]string{
			"flights":  searchMode,
			"hotels":   searchMode,
			"payments": paymentMode,
		},
		Endpoints: map[string]string{
			"flights": "GET /api/flights?origin=TLV&destination=NYC&date=2026-12-25&passengers=1",
			"hotels":  "GET /api/hotels?cityCode=NYC&checkIn=2026-12-20&checkOut=2026-12-25&guests=1",
			"payment": "POST /api/create-payment",
		},
	})
}
