package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"myeagle/internal/envelope"
	"myeagle/pkg/logger"
)

// Recovery converts panics into the standard error envelope so a raw
// failure never reaches the client. Panic detail is only echoed outside
// production.
func Recovery(log logger.Client, appEnv string) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("unhandled panic",
			logger.Field{Key: "request_id", Value: RequestID(c)},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
			logger.Field{Key: "panic", Value: fmt.Sprint(recovered)},
		)

		resp := envelope.ErrorResponse{
			Error:   "Internal server error",
			Details: "Something went wrong",
		}
		if appEnv != "production" {
			resp.Details = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}

// NotFound answers unknown routes with the error envelope.
func NotFound(log logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Warn("route not found",
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
		)
		c.JSON(http.StatusNotFound, envelope.ErrorResponse{
			Error:      "Endpoint not found",
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Suggestion: "Check the API documentation at GET /",
		})
	}
}
