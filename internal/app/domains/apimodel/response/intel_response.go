package response

import (
	"opsdash/studio/internal/app/domains/diaglink"
	"opsdash/studio/internal/app/domains/entity/etintel"
	"opsdash/studio/internal/app/domains/entity/etledger"
	"opsdash/studio/internal/app/domains/services/svintel"
)

// ReconciliationRowView 三方对账行 + 跨工具链接
type ReconciliationRowView struct {
	etintel.ReconciliationRow
	Links map[string]string `json:"links,omitempty"`
}

// AutohealView 自愈建议 + 跨工具链接
type AutohealView struct {
	etintel.AutohealSuggestion
	Links map[string]string `json:"links,omitempty"`
}

// AgeingView 临期风险行 + 跨工具链接
type AgeingView struct {
	etintel.AgeingRow
	Links map[string]string `json:"links,omitempty"`
}

// IntelOverviewResponse 智能看板总览
type IntelOverviewResponse struct {
	Insights      *etintel.InsightsPayload                  `json:"insights,omitempty"`
	Anomalies     []ReconciliationRowView                   `json:"anomalies"`
	MismatchCount int                                       `json:"mismatch_count"`
	Ageing        []AgeingView                              `json:"ageing"` // 按剩余天数升序
	AgeingBuckets map[etintel.RiskLevel][]etintel.AgeingRow `json:"ageing_buckets"`
	Autoheal      []AutohealView                            `json:"autoheal"`
	Predict       []etintel.PredictRow                      `json:"predict"`
}

// FromOverview 装配智能看板响应，并为每行派生跳转链接
func FromOverview(o *svintel.Overview) *IntelOverviewResponse {
	resp := &IntelOverviewResponse{
		Insights:      o.Insights,
		MismatchCount: o.MismatchCount,
		Anomalies:     make([]ReconciliationRowView, 0, len(o.Anomalies)),
		Ageing:        make([]AgeingView, 0, len(o.Ageing)),
		AgeingBuckets: etintel.BucketByRisk(o.Ageing),
		Autoheal:      make([]AutohealView, 0, len(o.Autoheal)),
		Predict:       o.Predict,
	}

	for _, row := range o.Anomalies {
		resp.Anomalies = append(resp.Anomalies, ReconciliationRowView{
			ReconciliationRow: row,
			Links:             dimensionLinks(row.WarehouseID, row.ItemID, row.BatchCode),
		})
	}

	for _, row := range o.Ageing {
		resp.Ageing = append(resp.Ageing, AgeingView{
			AgeingRow: row,
			Links:     dimensionLinks(row.WarehouseID, row.ItemID, row.BatchCode),
		})
	}

	for _, row := range o.Autoheal {
		resp.Autoheal = append(resp.Autoheal, AutohealView{
			AutohealSuggestion: row,
			Links:              dimensionLinks(row.WarehouseID, row.ItemID, row.BatchCode),
		})
	}

	return resp
}

// HotItemsResponse 出库热度排名
type HotItemsResponse struct {
	Days  int               `json:"days"`
	Limit int               `json:"limit"`
	Items []etintel.HotItem `json:"items"`
}

// LedgerRowView 台账流水行 + 跨工具链接
type LedgerRowView struct {
	etledger.Row
	Links map[string]string `json:"links,omitempty"`
}

// LedgerPageResponse 台账查询结果页
type LedgerPageResponse struct {
	Total int64           `json:"total"`
	Items []LedgerRowView `json:"items"`
}

// FromLedgerPage 装配台账响应，流水行带 trace 回跳与维度链接
func FromLedgerPage(page *etledger.Page) *LedgerPageResponse {
	resp := &LedgerPageResponse{
		Total: page.Total,
		Items: make([]LedgerRowView, 0, len(page.Items)),
	}

	for _, row := range page.Items {
		links := dimensionLinks(row.WarehouseID, row.ItemID, row.BatchCode)
		if row.TraceID != "" {
			links["trace"] = diaglink.Encode(diaglink.Trace(row.TraceID, row.Ref))
		}
		resp.Items = append(resp.Items, LedgerRowView{Row: row, Links: links})
	}

	return resp
}

// dimensionLinks 按维度齐全程度派生工具链接
func dimensionLinks(warehouseID, itemID int64, batchCode string) map[string]string {
	links := make(map[string]string)
	if warehouseID > 0 && itemID > 0 {
		links["ledger"] = diaglink.Encode(diaglink.Ledger(warehouseID, itemID, batchCode))
		links["stock"] = diaglink.Encode(diaglink.Stock(warehouseID, itemID, batchCode))
		if batchCode != "" {
			links["lifeline"] = diaglink.Encode(diaglink.Lifeline(warehouseID, itemID, batchCode))
		}
	}
	return links
}
