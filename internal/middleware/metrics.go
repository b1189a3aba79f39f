package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"mindmate-go/pkg/metrics"
)

// Metrics 按路由模板记录请求数与耗时；未匹配的路由归入 "unmatched"。
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Writer.Status(), time.Since(start))
	}
}
