package diaglink

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opsdash/studio/internal/app/domains/entity/ettrace"
)

func TestEncodeTrace(t *testing.T) {
	assert.Equal(t, "/trace?tab=trace&trace_id=T-9", Encode(Trace("T-9", "")))
	assert.Equal(t, "/trace?tab=trace&trace_id=T-9&focus_ref=R1", Encode(Trace("T-9", "R1")))
}

func TestEncodeLedger(t *testing.T) {
	assert.Equal(t, "/tools/ledger?tab=tool&warehouse_id=2&item_id=5", Encode(Ledger(2, 5, "")))
	assert.Equal(t, "/tools/ledger?tab=tool&warehouse_id=2&item_id=5&batch_code=B-7", Encode(Ledger(2, 5, "B-7")))
}

func TestEncodeStock(t *testing.T) {
	assert.Equal(t, "/tools/stocks?warehouse_id=2&item_id=5", Encode(Stock(2, 5, "")))
	assert.Equal(t, "/tools/stocks?warehouse_id=2&item_id=5&batch_code=B-7", Encode(Stock(2, 5, "B-7")))
}

func TestEncodeLifeline(t *testing.T) {
	// 片段在查询串之后拼接，参数顺序是对外契约
	assert.Equal(t,
		"/tools/stocks?warehouse_id=1&item_id=1001&batch_code=B-01#lifeline",
		Encode(Lifeline(1, 1001, "B-01")))
}

func TestEncodeNeverPanics(t *testing.T) {
	// 全函数：任何形状都落到安全路由，绝不 panic
	tests := []struct {
		name string
		link Link
	}{
		{"unknown kind", Link{Kind: "bogus"}},
		{"zero value", Link{}},
		{"trace without id", Trace("", "ref")},
		{"ledger missing item", Ledger(2, 0, "")},
		{"stock missing warehouse", Stock(0, 5, "")},
		{"lifeline missing batch", Lifeline(1, 1001, "")},
		{"negative dimensions", Ledger(-1, -2, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, FallbackRoute, Encode(tt.link))
			})
		})
	}
}

func TestEncodeEscapesValues(t *testing.T) {
	got := Encode(Trace("T 1/2", "a&b"))

	assert.Contains(t, got, "trace_id=T+1%2F2")
	assert.Contains(t, got, "focus_ref=a%26b")
}

func TestEventLinks(t *testing.T) {
	ev := ettrace.TraceEvent{
		Ref:         "ORD-1",
		WarehouseID: 1,
		ItemID:      1001,
		BatchCode:   "B-01",
	}

	links := EventLinks(&ev, "T-9")

	assert.Equal(t, "/trace?tab=trace&trace_id=T-9&focus_ref=ORD-1", links["trace"])
	assert.Equal(t, "/tools/ledger?tab=tool&warehouse_id=1&item_id=1001&batch_code=B-01", links["ledger"])
	assert.Equal(t, "/tools/stocks?warehouse_id=1&item_id=1001&batch_code=B-01", links["stock"])
	assert.Equal(t, "/tools/stocks?warehouse_id=1&item_id=1001&batch_code=B-01#lifeline", links["lifeline"])
}

func TestEventLinksPartialDimensions(t *testing.T) {
	// 缺批次 → 无生命线链接；缺 ref → 无 trace 聚焦链接
	ev := ettrace.TraceEvent{WarehouseID: 1, ItemID: 1001}

	links := EventLinks(&ev, "T-9")

	assert.NotContains(t, links, "lifeline")
	assert.NotContains(t, links, "trace")
	assert.Contains(t, links, "ledger")
	assert.Contains(t, links, "stock")
}

func TestEventLinksNoDimensions(t *testing.T) {
	ev := ettrace.TraceEvent{Source: "audit"}

	assert.Empty(t, EventLinks(&ev, ""))
}
