package tools

import (
	"github.com/gin-gonic/gin"

	"opsdash/studio/internal/app/domains/apimodel/request"
	"opsdash/studio/internal/app/domains/apimodel/response"
	"opsdash/studio/internal/app/pkg/ginx"
)

// QueryLedger 台账工具查询
// POST /api/v1/tools/ledger/query
// 过滤条件原样转发后端，流水行附带 trace 回跳与维度链接。
func (h *ToolsHandler) QueryLedger(c *gin.Context) {
	var req request.LedgerQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	page, err := h.upstream.QueryLedger(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "ledger query failed: %v", err)
		ginx.BadGateway(c, err.Error())
		return
	}

	ginx.Success(c, response.FromLedgerPage(page))
}
