package etledger

// Filter 台账查询过滤条件（与后端 /stock/ledger/query 的契约一致）
type Filter struct {
	ItemID      int64  `json:"item_id,omitempty"`
	ItemKeyword string `json:"item_keyword,omitempty"`
	WarehouseID int64  `json:"warehouse_id,omitempty"`
	BatchCode   string `json:"batch_code,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Ref         string `json:"ref,omitempty"`
	TraceID     string `json:"trace_id,omitempty"`
	TimeFrom    string `json:"time_from,omitempty"`
	TimeTo      string `json:"time_to,omitempty"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
}

// Row 单条台账流水
// 约定：负 delta 表示出库流向，正 delta 表示入库/调增。
type Row struct {
	ID           int64  `json:"id"`
	WarehouseID  int64  `json:"warehouse_id"`
	ItemID       int64  `json:"item_id"`
	BatchCode    string `json:"batch_code"`
	Delta        int64  `json:"delta"`
	MovementType string `json:"movement_type"`
	Reason       string `json:"reason"`
	Ref          string `json:"ref"`
	TraceID      string `json:"trace_id"`
	CreatedAt    string `json:"created_at"`
}

// Page 台账查询结果页
type Page struct {
	Total int64 `json:"total"`
	Items []Row `json:"items"`
}
