package ettrace

import (
	"fmt"
	"strings"
)

// 徽标样式常量（前端按样式名着色）
const (
	BadgeOrder          = "order"
	BadgeReservation    = "reservation"
	BadgeReservationEnd = "reservation-consumed"
	BadgeOutbound       = "outbound"
	BadgeLedgerOut      = "ledger-out"
	BadgeLedgerIn       = "ledger-in"
	BadgeLedgerAdjust   = "ledger-adjust"
	BadgeLedger         = "ledger"
	BadgeAuditRouting   = "audit-routing"
	BadgeAudit          = "audit"
	BadgeEventStore     = "event-store"
	BadgeDefault        = "default"
)

// RoutingDecision 仓库路由决策详情（仅 WAREHOUSE_ROUTED 审计事件携带）
type RoutingDecision struct {
	WarehouseID string   // 选中的仓库
	Mode        string   // 路由模式
	Candidates  []string // 参与评估的候选仓库
}

// Classification 事件的展示分类
type Classification struct {
	Badge       string
	Icon        string
	Label       string
	Explanation string
	Routing     *RoutingDecision
}

// taxonomyRule 分类规则：按表序自上而下求值，先命中者生效
// 优先级是一张可见的数据结构，不隐含在代码顺序里，便于逐条测试。
type taxonomyRule struct {
	match  func(e *TraceEvent) bool
	render func(e *TraceEvent) Classification
}

var taxonomy = []taxonomyRule{
	{
		match: sourceIs(SourceOrder),
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeOrder,
				Icon:        "shopping-cart",
				Label:       "Order event",
				Explanation: "An order-level lifecycle event.",
			}
		},
	},
	{
		match: sourceIs(SourceReservation),
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeReservation,
				Icon:        "lock",
				Label:       "Reservation created",
				Explanation: "Stock was reserved for this reference.",
			}
		},
	},
	{
		match: sourceIs(SourceReservationConsumed),
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeReservationEnd,
				Icon:        "unlock",
				Label:       "Reservation consumed",
				Explanation: "A previously created reservation was consumed.",
			}
		},
	},
	{
		match: sourceIs(SourceOutbound),
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeOutbound,
				Icon:        "truck",
				Label:       "Shipment submitted",
				Explanation: "An outbound shipment was submitted to the carrier.",
			}
		},
	},
	{
		match: func(e *TraceEvent) bool {
			return e.Source == SourceLedger && strings.HasPrefix(reasonOf(e), "SHIP")
		},
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeLedgerOut,
				Icon:        "arrow-down",
				Label:       "Ledger decrease (shipment)",
				Explanation: "Stock decreased because a shipment left the warehouse.",
			}
		},
	},
	{
		match: func(e *TraceEvent) bool {
			r := reasonOf(e)
			return e.Source == SourceLedger && (strings.HasPrefix(r, "RETURN") || r == "RECEIPT")
		},
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeLedgerIn,
				Icon:        "arrow-up",
				Label:       "Ledger increase (inbound/return)",
				Explanation: "Stock increased from an inbound receipt or a return.",
			}
		},
	},
	{
		match: func(e *TraceEvent) bool {
			r := reasonOf(e)
			return e.Source == SourceLedger && (r == "ADJUSTMENT" || r == "COUNT")
		},
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeLedgerAdjust,
				Icon:        "wrench",
				Label:       "Manual correction",
				Explanation: "A manual adjustment or cycle count corrected the balance.",
			}
		},
	},
	{
		match: sourceIs(SourceLedger),
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeLedger,
				Icon:        "book",
				Label:       "Ledger movement",
				Explanation: "A generic stock ledger movement.",
			}
		},
	},
	{
		match: func(e *TraceEvent) bool {
			return e.Source == SourceAudit && e.RawString("event") == "WAREHOUSE_ROUTED"
		},
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeAuditRouting,
				Icon:        "git-branch",
				Label:       "Routing decision",
				Explanation: "The router selected a fulfillment warehouse for this order.",
				Routing:     routingOf(e),
			}
		},
	},
	{
		match: sourceIs(SourceAudit),
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeAudit,
				Icon:        "shield",
				Label:       "Audit entry",
				Explanation: "A generic audit log entry.",
			}
		},
	},
	{
		match: sourceIs(SourceEventStore),
		render: func(e *TraceEvent) Classification {
			return Classification{
				Badge:       BadgeEventStore,
				Icon:        "radio",
				Label:       "Bus event",
				Explanation: "An event published on the platform event bus.",
			}
		},
	},
}

// Classify 事件分类（纯函数：无状态、无网络调用）
// 未命中任何规则时走兜底样式，用 source:kind 作为标签。
// 兜底样式没有分类专属的解释句，回落到事件自身的 Summary。
func Classify(e *TraceEvent) Classification {
	for _, rule := range taxonomy {
		if rule.match(e) {
			c := rule.render(e)
			if c.Explanation == "" {
				c.Explanation = e.Summary
			}
			return c
		}
	}

	return Classification{
		Badge:       BadgeDefault,
		Icon:        "circle",
		Label:       fmt.Sprintf("%s:%s", e.Source, e.Kind),
		Explanation: e.Summary,
	}
}

func sourceIs(source string) func(e *TraceEvent) bool {
	return func(e *TraceEvent) bool { return e.Source == source }
}

// reasonOf 取大写化的 reason（历史字段名 event_name 兜底）
func reasonOf(e *TraceEvent) string {
	r := e.RawString("reason")
	if r == "" {
		r = e.RawString("event_name")
	}
	return strings.ToUpper(r)
}

// routingOf 从原始记录提取路由决策详情（字段缺失时尽力而为）
func routingOf(e *TraceEvent) *RoutingDecision {
	d := &RoutingDecision{
		WarehouseID: e.RawString("warehouse_id"),
		Mode:        e.RawString("mode"),
	}

	if list, ok := e.RawMap()["candidates"].([]interface{}); ok {
		for _, c := range list {
			if s := stringValue(c); s != "" {
				d.Candidates = append(d.Candidates, s)
			}
		}
	}

	return d
}
