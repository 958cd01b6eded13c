package ettrace

import "sort"

// Instant 提取事件的排序时刻（unix 毫秒）
// 时间缺失或解析失败的事件取 0，排到最前而不是被排除。
func Instant(e *TraceEvent) int64 {
	if e.Timestamp == nil {
		return 0
	}
	return e.Timestamp.UnixMilli()
}

// SortByTime 按时间升序做稳定排序（原地）
// 相同时刻的事件保持后端返回的相对顺序，同一事务产生的事件依赖这一点。
func SortByTime(events []TraceEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return Instant(&events[i]) < Instant(&events[j])
	})
}
