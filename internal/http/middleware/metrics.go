package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/observability"
)

const (
	routeScrape   = "/metrics"
	routeFallback = "fallback"
)

// Metrics records request counts and latency by route pattern. The scrape
// endpoint is not counted; unmatched paths share one "fallback" label so SPA
// deep links cannot blow up cardinality. A nil m disables it.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.URL.Path == routeScrape {
			c.Next()
			return
		}
		m.ApiInflightInc()
		start := time.Now()
		c.Next()
		m.ApiInflightDec()

		route := c.FullPath()
		if route == "" {
			route = routeFallback
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
