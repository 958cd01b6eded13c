package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"opsdash/studio/internal/app/pkg/logger"
)

// AccessLog 访问日志中间件
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
