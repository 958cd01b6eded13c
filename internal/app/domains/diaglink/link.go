package diaglink

import (
	"net/url"
	"strconv"
	"strings"
)

// 链接意图（封闭集合，每个目标工具一个变体）
type Kind string

const (
	KindTrace    Kind = "trace"
	KindLedger   Kind = "ledger"
	KindLifeline Kind = "lifeline"
	KindStock    Kind = "stock"
)

// FallbackRoute 无法识别或缺少必要维度的链接统一落到快照首页
// 这是跨工具导航唯一的安全网：任何一个工具的渲染缺陷都不会产生坏链接。
const FallbackRoute = "/snapshot"

// Link 诊断工具间的跳转意图（带标签联合）
// 工具之间只允许通过本协议互相导航，禁止直接拼接对方的查询参数。
type Link struct {
	Kind        Kind
	TraceID     string
	FocusRef    string
	WarehouseID int64
	ItemID      int64
	BatchCode   string
}

// Trace 构造 Trace Studio 跳转
func Trace(traceID, focusRef string) Link {
	return Link{Kind: KindTrace, TraceID: traceID, FocusRef: focusRef}
}

// Ledger 构造台账工具跳转
func Ledger(warehouseID, itemID int64, batchCode string) Link {
	return Link{Kind: KindLedger, WarehouseID: warehouseID, ItemID: itemID, BatchCode: batchCode}
}

// Stock 构造库存工具跳转
func Stock(warehouseID, itemID int64, batchCode string) Link {
	return Link{Kind: KindStock, WarehouseID: warehouseID, ItemID: itemID, BatchCode: batchCode}
}

// Lifeline 构造批次生命线跳转（三个维度缺一不可）
func Lifeline(warehouseID, itemID int64, batchCode string) Link {
	return Link{Kind: KindLifeline, WarehouseID: warehouseID, ItemID: itemID, BatchCode: batchCode}
}

// Encode 编码为页面 URL（纯函数、全函数：任何形状都不会 panic）
// 参数名（tab/trace_id/focus_ref/warehouse_id/item_id/batch_code）与
// #lifeline 片段约定是对外契约，改动即破坏跨工具导航。
func Encode(l Link) string {
	switch l.Kind {
	case KindTrace:
		if l.TraceID == "" {
			return FallbackRoute
		}
		pairs := [][2]string{{"tab", "trace"}, {"trace_id", l.TraceID}}
		if l.FocusRef != "" {
			pairs = append(pairs, [2]string{"focus_ref", l.FocusRef})
		}
		return "/trace?" + encodeQuery(pairs)

	case KindLedger:
		if l.WarehouseID <= 0 || l.ItemID <= 0 {
			return FallbackRoute
		}
		pairs := [][2]string{
			{"tab", "tool"},
			{"warehouse_id", strconv.FormatInt(l.WarehouseID, 10)},
			{"item_id", strconv.FormatInt(l.ItemID, 10)},
		}
		if l.BatchCode != "" {
			pairs = append(pairs, [2]string{"batch_code", l.BatchCode})
		}
		return "/tools/ledger?" + encodeQuery(pairs)

	case KindStock:
		if l.WarehouseID <= 0 || l.ItemID <= 0 {
			return FallbackRoute
		}
		pairs := [][2]string{
			{"warehouse_id", strconv.FormatInt(l.WarehouseID, 10)},
			{"item_id", strconv.FormatInt(l.ItemID, 10)},
		}
		if l.BatchCode != "" {
			pairs = append(pairs, [2]string{"batch_code", l.BatchCode})
		}
		return "/tools/stocks?" + encodeQuery(pairs)

	case KindLifeline:
		if l.WarehouseID <= 0 || l.ItemID <= 0 || l.BatchCode == "" {
			return FallbackRoute
		}
		pairs := [][2]string{
			{"warehouse_id", strconv.FormatInt(l.WarehouseID, 10)},
			{"item_id", strconv.FormatInt(l.ItemID, 10)},
			{"batch_code", l.BatchCode},
		}
		// 片段不属于查询串构造器，最后拼接
		return "/tools/stocks?" + encodeQuery(pairs) + "#lifeline"

	default:
		return FallbackRoute
	}
}

// encodeQuery 按插入顺序编码查询串
// 不能用 url.Values.Encode：它会按键名字典序重排，破坏既有的参数顺序契约。
func encodeQuery(pairs [][2]string) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
