package middleware

import (
	"time"

	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		logger.Info("Request processed", map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": latency.Milliseconds(),
			"ip":         ip,
			"request_id": c.GetHeader("X-Request-ID"),
			"errors":     c.Errors.Errors(),
		})
	}
}
