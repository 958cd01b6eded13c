package trace

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"opsdash/studio/internal/app/domains/apimodel/request"
	"opsdash/studio/internal/app/domains/apimodel/response"
	"opsdash/studio/internal/app/domains/services/svtrace"
	"opsdash/studio/internal/app/pkg/ginx"
	"opsdash/studio/internal/app/pkg/logger"
)

// 长轮询缺省等待时长
const defaultWaitTimeout = 30 * time.Second

// Wait 长轮询等待 trace 刷新通知
// GET /api/v1/trace/:trace_id/wait?timeout=30
// 后端有新事件落库时会向 trace:refresh:{trace_id} 发通知；收到通知后
// 重新加载控制器并返回最新视图，超时则返回 504 由前端自行决定重试。
func (h *TraceHandler) Wait(c *gin.Context) {
	traceID := c.Param("trace_id")
	if traceID == "" {
		ginx.BadRequest(c, "trace_id required")
		return
	}

	if h.pubsub == nil {
		ginx.Error(c, http.StatusServiceUnavailable, "live refresh is not configured")
		return
	}

	var req request.TraceWaitRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	timeout := defaultWaitTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	ctx := logger.WithTraceID(c.Request.Context(), traceID)

	if err := h.pubsub.WaitForRefresh(ctx, traceID, timeout); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			ginx.GatewayTimeout(c, "no refresh within wait window")
			return
		}
		h.log.Errorf(ctx, "wait for refresh failed: %v", err)
		ginx.InternalError(c, "wait for refresh failed")
		return
	}

	snap, err := h.controllerFor(traceID).Load(ctx, svtrace.Query{TraceID: traceID})
	if err != nil && snap.View == nil {
		ginx.BadGateway(c, err.Error())
		return
	}

	ginx.Success(c, response.FromSnapshot(snap, ""))
}
