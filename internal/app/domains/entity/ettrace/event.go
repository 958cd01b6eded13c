package ettrace

import "time"

// 事件来源词表（固定但可扩展：未知来源照常接受，走兜底分类）
const (
	SourceOrder               = "order"
	SourceReservation         = "reservation"
	SourceReservationConsumed = "reservation_consumed"
	SourceOutbound            = "outbound"
	SourceLedger              = "ledger"
	SourceAudit               = "audit"
	SourceEventStore          = "event_store"
)

// Issue 服务端附加在单条事件上的异常标记
type Issue struct {
	Code     string
	Message  string
	Severity string
}

// TraceEvent 规范化后的诊断事件（领域对象）
// 各后端子系统的原始记录字段名并不一致，统一由 Normalize 收敛到本结构。
// 不变量：Raw 永远保留原始记录，规范化不丢弃任何未识别字段。
type TraceEvent struct {
	Timestamp    *time.Time  // 事件时间，可能缺失（排序策略见 timeline.go）
	Source       string      // 来源（见上方词表）
	Kind         string      // 来源相关的子类型，如 INBOUND/OUTBOUND/WAREHOUSE_ROUTED
	Ref          string      // 业务引用（订单号、扫描号、快照任务号），分组键
	TraceID      string      // 关联 ID，与 Ref 是两条独立的关联轴
	WarehouseID  int64       // 维度属性，0 表示缺失，仅用于生成跳转链接
	ItemID       int64       // 同上
	BatchCode    string      // 同上
	MovementType string      // 台账事件回显的移动类型
	Summary      string      // 人类可读摘要（按 summary→message→reason→kind 取首个非空）
	Issues       []Issue     // 服务端附加的异常标记
	Raw          interface{} // 原始记录（向前兼容，永不丢弃）
}

// RawMap 以 map 形式访问原始记录；原始输入不是对象时返回 nil
func (e *TraceEvent) RawMap() map[string]interface{} {
	m, _ := e.Raw.(map[string]interface{})
	return m
}

// RawString 从原始记录提取指定键的字符串值（数值会被格式化），缺失返回空串
func (e *TraceEvent) RawString(key string) string {
	m := e.RawMap()
	if m == nil {
		return ""
	}
	return stringValue(m[key])
}
