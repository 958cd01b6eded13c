package etintel

// 批次风险级别（由服务端赋值，本层只按级别分桶/着色，绝不重算）
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ReconciliationRow 三方对账行（台账合计 vs 实物库存 vs 日快照）
// 展示口径：DiffVsStock = LedgerSum − StockBalance，非零即异常信号。
// 对账计算在服务端完成，本层只透传并如实展示分歧。
type ReconciliationRow struct {
	WarehouseID     int64  `json:"warehouse_id"`
	ItemID          int64  `json:"item_id"`
	BatchCode       string `json:"batch_code"`
	LedgerSum       int64  `json:"ledger_sum"`
	StockBalance    int64  `json:"stock_balance"`
	SnapshotBalance int64  `json:"snapshot_balance"`
	DiffVsStock     int64  `json:"diff_vs_stock"`
	DiffVsSnapshot  int64  `json:"diff_vs_snapshot"`
}

// AutohealSuggestion 自愈建议（仅供参考的 dry-run 调整，绝不自动执行）
type AutohealSuggestion struct {
	WarehouseID int64  `json:"warehouse_id"`
	ItemID      int64  `json:"item_id"`
	BatchCode   string `json:"batch_code"`
	Ledger      int64  `json:"ledger"`
	Stocks      int64  `json:"stocks"`
	Diff        int64  `json:"diff"`
	Action      string `json:"action"`
	AdjustDelta int64  `json:"adjust_delta"`
}

// AgeingRow 批次临期风险行
type AgeingRow struct {
	WarehouseID int64     `json:"warehouse_id"`
	ItemID      int64     `json:"item_id"`
	BatchCode   string    `json:"batch_code"`
	ExpiryDate  string    `json:"expiry_date"`
	DaysLeft    int       `json:"days_left"`
	RiskLevel   RiskLevel `json:"risk_level"`
}

// InsightCard 概览卡片
type InsightCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Trend    string `json:"trend"`
	Severity string `json:"severity"`
}

// InsightsPayload 概览数据
type InsightsPayload struct {
	GeneratedAt string        `json:"generated_at"`
	Cards       []InsightCard `json:"cards"`
}

// PredictRow 断货预测行（预测算术在服务端完成）
type PredictRow struct {
	WarehouseID      int64    `json:"warehouse_id"`
	ItemID           int64    `json:"item_id"`
	AvgDailyOutbound float64  `json:"avg_daily_outbound"`
	DaysToStockout   *float64 `json:"days_to_stockout"`
	SuggestedReorder int64    `json:"suggested_reorder"`
}
