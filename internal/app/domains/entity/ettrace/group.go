package ettrace

import "sort"

// GroupRefNone 缺失 ref 的事件共享的占位分组（单个字面量分组，不是每事件一组）
const GroupRefNone = "(none)"

// Group 一个业务引用下的事件组，组内按时间升序
type Group struct {
	Ref    string
	Events []TraceEvent
}

// GroupByRef 按 ref 分组
// 组按 ref 字典序排列（刻意不按时间，保证重复查询下渲染稳定可对比）；
// 组内独立套用 timeline 的排序策略。任何事件不会被丢弃或重复。
func GroupByRef(events []TraceEvent) []Group {
	buckets := make(map[string][]TraceEvent)
	for i := range events {
		ref := events[i].Ref
		if ref == "" {
			ref = GroupRefNone
		}
		buckets[ref] = append(buckets[ref], events[i])
	}

	refs := make([]string, 0, len(buckets))
	for ref := range buckets {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	groups := make([]Group, 0, len(refs))
	for _, ref := range refs {
		members := buckets[ref]
		SortByTime(members)
		groups = append(groups, Group{Ref: ref, Events: members})
	}
	return groups
}
