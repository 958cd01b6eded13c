package etintel

import (
	"sort"

	"opsdash/studio/internal/app/domains/entity/etledger"
)

// HotItem 出库热度排名项
type HotItem struct {
	ItemID        int64 `json:"item_id"`
	TotalOutbound int64 `json:"total_outbound"`
	Events        int   `json:"events"`
}

// TopOutboundItems 基于台账明细做客户端聚合，取出库量 Top-N
// 口径：只累计负 delta（出库约定），按 |delta| 求和并计数出库事件；
// 窗口内没有出库事件的商品不出现在结果里（不是补零值条目）。
func TopOutboundItems(rows []etledger.Row, topN int) []HotItem {
	totals := make(map[int64]*HotItem)
	for _, row := range rows {
		if row.Delta >= 0 {
			continue
		}
		item, ok := totals[row.ItemID]
		if !ok {
			item = &HotItem{ItemID: row.ItemID}
			totals[row.ItemID] = item
		}
		item.TotalOutbound += -row.Delta
		item.Events++
	}

	ranked := make([]HotItem, 0, len(totals))
	for _, item := range totals {
		ranked = append(ranked, *item)
	}

	// 出库量降序，同量按 item_id 升序保证结果可复现
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalOutbound != ranked[j].TotalOutbound {
			return ranked[i].TotalOutbound > ranked[j].TotalOutbound
		}
		return ranked[i].ItemID < ranked[j].ItemID
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
