package request

// TraceQueryRequest Trace Studio 查询参数
// source 是客户端过滤选择器；warehouse_id 是服务端过滤条件；
// focus_ref 只用于高亮定位，不参与过滤。
type TraceQueryRequest struct {
	WarehouseID int64  `form:"warehouse_id" binding:"omitempty,min=1"`
	FocusRef    string `form:"focus_ref"`
	Source      string `form:"source"`
}

// TraceWaitRequest 长轮询等待参数
type TraceWaitRequest struct {
	TimeoutSeconds int `form:"timeout" binding:"omitempty,min=1,max=60"`
}

// HotItemsRequest 出库热度查询参数
type HotItemsRequest struct {
	Days  int `form:"days" binding:"omitempty,min=1,max=90"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
