package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vesper-eve/token-pulse/internal/observability"
)

// Logger logs request information
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Filter out HTTP/2 connection preface attempts
		if c.Request.Method == "PRI" {
			c.AbortWithStatus(400)
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if query != "" {
			path = path + "?" + query
		}

		log.Printf("[API] %s %s %d %v", c.Request.Method, path, status, latency)
	}
}

// Recovery recovers from panics and returns a 500 error
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[API] Panic recovered: %v", err)
				c.AbortWithStatusJSON(500, gin.H{
					"error":   "Internal error",
					"message": fmt.Sprint(err),
				})
			}
		}()
		c.Next()
	}
}

// CORS adds permissive CORS headers and answers preflight requests
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// CacheHint adds a short public cache hint to every response
func CacheHint(seconds int) gin.HandlerFunc {
	value := fmt.Sprintf("public, max-age=%d", seconds)
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", value)
		c.Next()
	}
}

// Metrics records request counts and latency. metrics may be nil.
func Metrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		metrics.RequestDuration.Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(fmt.Sprint(c.Writer.Status())).Inc()
	}
}
