package request

import "opsdash/studio/internal/app/domains/entity/etledger"

// LedgerQueryRequest 台账工具的查询请求
type LedgerQueryRequest struct {
	ItemID      int64  `json:"item_id" binding:"omitempty,min=1"`
	ItemKeyword string `json:"item_keyword"`
	WarehouseID int64  `json:"warehouse_id" binding:"omitempty,min=1"`
	BatchCode   string `json:"batch_code"`
	Reason      string `json:"reason"`
	Ref         string `json:"ref"`
	TraceID     string `json:"trace_id"`
	TimeFrom    string `json:"time_from"`
	TimeTo      string `json:"time_to"`
	Limit       int    `json:"limit" binding:"required,min=1,max=500"`
	Offset      int    `json:"offset" binding:"omitempty,min=0"`
}

// ToFilter 转换为后端过滤条件
func (r *LedgerQueryRequest) ToFilter() etledger.Filter {
	return etledger.Filter{
		ItemID:      r.ItemID,
		ItemKeyword: r.ItemKeyword,
		WarehouseID: r.WarehouseID,
		BatchCode:   r.BatchCode,
		Reason:      r.Reason,
		Ref:         r.Ref,
		TraceID:     r.TraceID,
		TimeFrom:    r.TimeFrom,
		TimeTo:      r.TimeTo,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}
}
