package ettrace

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// 各概念的字段探测顺序（历史上不同子系统对同一概念用过不同字段名，
// 这里按固定优先级取第一个存在且非空的值，缺失一律降级为零值而不是报错）
var (
	timestampFields = []string{"ts", "timestamp", "created_at", "time", "occurred_at"}
	summaryFields   = []string{"summary", "message", "reason", "kind"}
	refFields       = []string{"ref", "order_id", "ref_no"}
	kindFields      = []string{"kind", "type", "event_type"}
)

// Normalize 将任意来源的原始记录规范化为 TraceEvent
// 纯函数。输入不是对象时返回仅保留 Raw 的空事件，下游渲染降级而不崩溃。
func Normalize(raw interface{}) TraceEvent {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return TraceEvent{Raw: raw}
	}

	ev := TraceEvent{
		Source:       stringValue(m["source"]),
		Ref:          probeString(m, refFields),
		TraceID:      stringValue(m["trace_id"]),
		Kind:         probeString(m, kindFields),
		WarehouseID:  int64Value(m["warehouse_id"]),
		ItemID:       int64Value(m["item_id"]),
		BatchCode:    stringValue(m["batch_code"]),
		MovementType: stringValue(m["movement_type"]),
		Summary:      probeString(m, summaryFields),
		Issues:       normalizeIssues(m["issues"]),
		Raw:          m,
	}

	if v, ok := probeValue(m, timestampFields); ok {
		ev.Timestamp = parseTimestamp(v)
	}

	return ev
}

// NormalizeAll 批量规范化
func NormalizeAll(raws []interface{}) []TraceEvent {
	events := make([]TraceEvent, 0, len(raws))
	for _, raw := range raws {
		events = append(events, Normalize(raw))
	}
	return events
}

// probeValue 按优先级探测字段，返回第一个存在且非 nil 的值
func probeValue(m map[string]interface{}, fields []string) (interface{}, bool) {
	for _, f := range fields {
		if v, ok := m[f]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// probeString 按优先级探测字段并取字符串值，空串视为缺失继续探测
func probeString(m map[string]interface{}, fields []string) string {
	for _, f := range fields {
		if v, ok := m[f]; ok && v != nil {
			if s := stringValue(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// parseTimestamp 尽力解析时间值，失败返回 nil（不排除、不报错）
// 接受 RFC3339（含纳秒）、"2006-01-02 15:04:05"，以及 epoch 秒/毫秒数值。
func parseTimestamp(v interface{}) *time.Time {
	switch t := v.(type) {
	case time.Time:
		return &t
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return &parsed
			}
		}
		return nil
	case float64:
		return epochTime(int64(t))
	case int64:
		return epochTime(t)
	case int:
		return epochTime(int64(t))
	default:
		return nil
	}
}

// epochTime epoch 数值小于 1e12 视为秒，否则视为毫秒
func epochTime(n int64) *time.Time {
	if n <= 0 {
		return nil
	}
	var t time.Time
	if n < 1_000_000_000_000 {
		t = time.Unix(n, 0).UTC()
	} else {
		t = time.UnixMilli(n).UTC()
	}
	return &t
}

// normalizeIssues 解析服务端附加的异常标记列表，形状不符时返回 nil
func normalizeIssues(v interface{}) []Issue {
	list, ok := v.([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}

	issues := make([]Issue, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		issues = append(issues, Issue{
			Code:     stringValue(m["code"]),
			Message:  stringValue(m["message"]),
			Severity: stringValue(m["severity"]),
		})
	}

	if len(issues) == 0 {
		return nil
	}
	return issues
}

// stringValue 宽容取字符串：数值格式化，其余类型返回空串
func stringValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		// JSON 数值统一解码为 float64，整数值去掉小数部分
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return fmt.Sprintf("%v", s)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// int64Value 宽容取整数：接受数值与数字字符串，失败返回 0
func int64Value(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
