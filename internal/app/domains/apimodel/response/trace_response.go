package response

// IssueView 事件上的异常标记
type IssueView struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// RoutingView 仓库路由决策详情
type RoutingView struct {
	WarehouseID string   `json:"warehouse_id"`
	Mode        string   `json:"mode"`
	Candidates  []string `json:"candidates,omitempty"`
}

// EventView 单条事件的渲染视图（规范化字段 + 分类 + 跨工具链接）
type EventView struct {
	Timestamp    string            `json:"timestamp,omitempty"` // RFC3339，缺失为空
	Source       string            `json:"source"`
	Kind         string            `json:"kind,omitempty"`
	Ref          string            `json:"ref,omitempty"`
	TraceID      string            `json:"trace_id,omitempty"`
	WarehouseID  int64             `json:"warehouse_id,omitempty"`
	ItemID       int64             `json:"item_id,omitempty"`
	BatchCode    string            `json:"batch_code,omitempty"`
	MovementType string            `json:"movement_type,omitempty"`
	Summary      string            `json:"summary,omitempty"`
	Issues       []IssueView       `json:"issues,omitempty"`
	Badge        string            `json:"badge"`
	Icon         string            `json:"icon"`
	Label        string            `json:"label"`
	Explanation  string            `json:"explanation,omitempty"`
	Routing      *RoutingView      `json:"routing,omitempty"`
	Links        map[string]string `json:"links,omitempty"`
	Focused      bool              `json:"focused,omitempty"`
	Raw          interface{}       `json:"raw,omitempty"` // 原始记录透传，永不丢弃
}

// GroupView 一个业务引用下的事件组
type GroupView struct {
	Ref    string      `json:"ref"`
	Count  int         `json:"count"`
	Events []EventView `json:"events"`
}

// TraceStudioResponse Trace Studio 调查视图
type TraceStudioResponse struct {
	TraceID      string      `json:"trace_id"`
	WarehouseID  int64       `json:"warehouse_id,omitempty"`
	FocusRef     string      `json:"focus_ref,omitempty"`
	State        string      `json:"state"`
	Error        string      `json:"error,omitempty"`
	FetchedAt    string      `json:"fetched_at,omitempty"`
	Sources      []string    `json:"sources"`       // 基础列表派生，不随过滤缩小
	SourceFilter string      `json:"source_filter"` // 当前选择器取值（ALL 或具体来源）
	Events       []EventView `json:"events"`        // 过滤后的时间线
	Groups       []GroupView `json:"groups"`        // 过滤后按 ref 分组
}
