package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"myeagle/pkg/idgen"
	"myeagle/pkg/logger"
)

const requestIDKey = "request_id"

// RequestLogger tags every request with a generated id and logs method,
// path, status and elapsed time. Client errors log as warnings, server
// errors as errors.
func RequestLogger(ids idgen.Generator, log logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := ids.GenerateRequestID()
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-Id", requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []logger.Field{
			{Key: "request_id", Value: requestID},
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.Request.URL.Path},
			{Key: "status", Value: status},
			{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
		}

		switch {
		case status >= 500:
			log.Error("request completed", fields...)
		case status >= 400:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}

// RequestID returns the id RequestLogger assigned to this request.
func RequestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
