package middlewares

import (
	"github.com/gin-gonic/gin"

	"opsdash/studio/internal/app/pkg/ginx"
	"opsdash/studio/internal/app/pkg/logger"
)

// Recovery 恐慌恢复中间件，统一走响应封装
// 单个诊断视图的失败只影响自身，不拖垮整个网关进程。
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v", r)
				ginx.InternalError(c, "internal error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
