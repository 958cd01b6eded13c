package ettrace

import "sort"

// FilterAll 不过滤的选择器取值
const FilterAll = "ALL"

// Sources 计算当前事件列表中出现过的来源集合（去重、升序）
// 必须在基础列表变化时重算，而不是过滤器变化时，否则切换过滤会缩小菜单。
func Sources(events []TraceEvent) []string {
	seen := make(map[string]struct{}, len(events))
	for i := range events {
		if events[i].Source == "" {
			continue
		}
		seen[events[i].Source] = struct{}{}
	}

	sources := make([]string, 0, len(seen))
	for s := range seen {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}

// FilterBySource 按来源过滤（纯谓词），selected 为 FilterAll 时恒等
func FilterBySource(events []TraceEvent, selected string) []TraceEvent {
	if selected == "" || selected == FilterAll {
		return events
	}

	filtered := make([]TraceEvent, 0, len(events))
	for i := range events {
		if events[i].Source == selected {
			filtered = append(filtered, events[i])
		}
	}
	return filtered
}
