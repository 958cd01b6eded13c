package intelligence

import (
	"github.com/gin-gonic/gin"

	"opsdash/studio/internal/app/domains/apimodel/request"
	"opsdash/studio/internal/app/domains/apimodel/response"
	"opsdash/studio/internal/app/domains/services/svintel"
	"opsdash/studio/internal/app/pkg/ginx"
	"opsdash/studio/internal/app/pkg/logger"
)

// IntelHandler 智能看板 HTTP 处理器
type IntelHandler struct {
	intelService *svintel.Service
	defaultDays  int
	defaultLimit int
	log          logger.Logger
}

// NewIntelHandler 创建智能看板处理器
func NewIntelHandler(intelService *svintel.Service, defaultDays, defaultLimit int, log logger.Logger) *IntelHandler {
	return &IntelHandler{
		intelService: intelService,
		defaultDays:  defaultDays,
		defaultLimit: defaultLimit,
		log:          log,
	}
}

// Overview 智能看板总览
// GET /api/v1/intelligence/overview
// 并行拉取 insights/anomaly/ageing/autoheal/predict 五个端点后装配。
func (h *IntelHandler) Overview(c *gin.Context) {
	overview, err := h.intelService.BuildOverview(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "build intelligence overview failed: %v", err)
		ginx.BadGateway(c, err.Error())
		return
	}

	ginx.Success(c, response.FromOverview(overview))
}

// HotItems 出库热度 Top-N
// GET /api/v1/intelligence/hot-items?days=7&limit=10
func (h *IntelHandler) HotItems(c *gin.Context) {
	var req request.HotItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	days := req.Days
	if days <= 0 {
		days = h.defaultDays
	}
	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}

	items, err := h.intelService.HotItems(c.Request.Context(), days, limit)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "hot items aggregation failed: %v", err)
		ginx.BadGateway(c, err.Error())
		return
	}

	ginx.Success(c, response.HotItemsResponse{
		Days:  days,
		Limit: limit,
		Items: items,
	})
}
