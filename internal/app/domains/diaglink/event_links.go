package diaglink

import "opsdash/studio/internal/app/domains/entity/ettrace"

// EventLinks 为单条事件派生可用的跨工具链接
// 只生成维度齐全的链接；占位分组（缺失 ref）的事件不生成 trace 聚焦链接。
func EventLinks(e *ettrace.TraceEvent, traceID string) map[string]string {
	links := make(map[string]string)

	if traceID != "" && e.Ref != "" && e.Ref != ettrace.GroupRefNone {
		links["trace"] = Encode(Trace(traceID, e.Ref))
	}

	if e.WarehouseID > 0 && e.ItemID > 0 {
		links["ledger"] = Encode(Ledger(e.WarehouseID, e.ItemID, e.BatchCode))
		links["stock"] = Encode(Stock(e.WarehouseID, e.ItemID, e.BatchCode))
		if e.BatchCode != "" {
			links["lifeline"] = Encode(Lifeline(e.WarehouseID, e.ItemID, e.BatchCode))
		}
	}

	return links
}
