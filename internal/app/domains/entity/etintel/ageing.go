package etintel

import "sort"

// riskRank 风险级别的展示优先级，数值越小越靠前
var riskRank = map[RiskLevel]int{
	RiskHigh:   0,
	RiskMedium: 1,
	RiskLow:    2,
}

// rankOf 未知级别排在已知级别之后
func rankOf(level RiskLevel) int {
	if r, ok := riskRank[level]; ok {
		return r
	}
	return len(riskRank)
}

// SortAgeing 按剩余天数升序稳定排序，剩余天数相同时高风险在前（原地）
func SortAgeing(rows []AgeingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DaysLeft != rows[j].DaysLeft {
			return rows[i].DaysLeft < rows[j].DaysLeft
		}
		return rankOf(rows[i].RiskLevel) < rankOf(rows[j].RiskLevel)
	})
}

// BucketByRisk 按服务端给定的风险级别分桶，桶内保持传入顺序
func BucketByRisk(rows []AgeingRow) map[RiskLevel][]AgeingRow {
	buckets := make(map[RiskLevel][]AgeingRow)
	for _, row := range rows {
		buckets[row.RiskLevel] = append(buckets[row.RiskLevel], row)
	}
	return buckets
}
