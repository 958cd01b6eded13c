package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opsdash/studio/internal/app/pkg/logger"
)

// HeaderRequestID 请求 ID 透传头
const HeaderRequestID = "X-Request-ID"

// RequestID 请求 ID 中间件：沿用调用方传入的 ID，缺失时生成
// ID 写入请求 Context，由 zap 日志统一输出
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
