package trace

import (
	"errors"

	"github.com/gin-gonic/gin"

	"opsdash/studio/internal/app/domains/apimodel/request"
	"opsdash/studio/internal/app/domains/apimodel/response"
	"opsdash/studio/internal/app/domains/services/svtrace"
	"opsdash/studio/internal/app/pkg/errorx"
	"opsdash/studio/internal/app/pkg/ginx"
	"opsdash/studio/internal/app/pkg/logger"
)

// Get godoc
// @Summary      获取 Trace 调查视图
// @Description  按 trace_id 拉取全链路事件并装配时间线、来源集合与 ref 分组
// @Tags         trace
// @Produce      json
// @Param        trace_id     path  string true  "关联 ID"
// @Param        warehouse_id query int    false "服务端仓库过滤"
// @Param        focus_ref    query string false "高亮定位的业务引用（不参与过滤）"
// @Param        source       query string false "来源过滤选择器（缺省 ALL）"
// @Success      200 {object} ginx.Response{data=response.TraceStudioResponse}
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      404 {object} ginx.Response "trace 不存在"
// @Failure      502 {object} ginx.Response "上游不可用"
// @Router       /trace/{trace_id} [get]
func (h *TraceHandler) Get(c *gin.Context) {
	traceID := c.Param("trace_id")
	if traceID == "" {
		ginx.BadRequest(c, "trace_id required")
		return
	}

	var req request.TraceQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := logger.WithTraceID(c.Request.Context(), traceID)
	ctrl := h.controllerFor(traceID)

	snap, err := ctrl.Load(ctx, svtrace.Query{
		TraceID:     traceID,
		WarehouseID: req.WarehouseID,
		FocusRef:    req.FocusRef,
	})

	switch {
	case err == nil:
		ginx.Success(c, response.FromSnapshot(snap, req.Source))

	case errors.Is(err, errorx.ErrQuerySuperseded):
		// 本次加载已被更新的查询取代，照常返回（更新者的）当前快照
		ginx.Success(c, response.FromSnapshot(snap, req.Source))

	case errors.Is(err, errorx.ErrTraceNotFound) && snap.View == nil:
		ginx.NotFound(c, "trace not found")

	case snap.View != nil:
		// 刷新失败但存在此前成功的视图：返回旧视图与错误信息，不清空可用结果
		h.log.Warnf(ctx, "trace refresh failed, serving last good view: %v", err)
		ginx.Success(c, response.FromSnapshot(snap, req.Source))

	default:
		h.log.Errorf(ctx, "trace fetch failed: %v", err)
		ginx.BadGateway(c, err.Error())
	}
}
