package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const slowRequestThreshold = 3 * time.Second

// RequestLogger tags each request with an ID, logs method, path, status and
// latency, and flags slow requests.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		log.Printf("[%s] %s %s %d %v", requestID, c.Request.Method, c.Request.URL.Path, status, latency)
		if latency > slowRequestThreshold {
			log.Printf("[%s] SLOW REQUEST: %s %s took %v", requestID, c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
