package tools

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"opsdash/studio/internal/app/domains/apimodel/response"
	"opsdash/studio/internal/app/domains/entity/etledger"
	"opsdash/studio/internal/app/pkg/ginx"
)

// 批次生命线单次展示的流水上限
const stocksPageLimit = 200

// GetStocks 库存工具 / 批次生命线
// GET /api/v1/tools/stocks?warehouse_id=&item_id=&batch_code=
// 按 (仓库, 商品[, 批次]) 维度取相关台账流水；批次生命线即带 batch_code
// 的完整流水视图。本工具只解码自己的参数契约（见 diaglink）。
func (h *ToolsHandler) GetStocks(c *gin.Context) {
	warehouseID, err := strconv.ParseInt(c.Query("warehouse_id"), 10, 64)
	if err != nil || warehouseID <= 0 {
		ginx.BadRequest(c, "warehouse_id required")
		return
	}

	itemID, err := strconv.ParseInt(c.Query("item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		ginx.BadRequest(c, "item_id required")
		return
	}

	page, err := h.upstream.QueryLedger(c.Request.Context(), etledger.Filter{
		WarehouseID: warehouseID,
		ItemID:      itemID,
		BatchCode:   c.Query("batch_code"),
		Limit:       stocksPageLimit,
	})
	if err != nil {
		h.log.Errorf(c.Request.Context(), "stocks query failed: %v", err)
		ginx.BadGateway(c, err.Error())
		return
	}

	ginx.Success(c, response.FromLedgerPage(page))
}
