package response

import (
	"time"

	"opsdash/studio/internal/app/domains/diaglink"
	"opsdash/studio/internal/app/domains/entity/ettrace"
	"opsdash/studio/internal/app/domains/services/svtrace"
)

// FromSnapshot 将控制器快照装配为 Trace Studio 响应
// 来源集合取自过滤前的基础列表；事件时间线与分组取自过滤后的工作集。
func FromSnapshot(snap svtrace.Snapshot, sourceFilter string) *TraceStudioResponse {
	resp := &TraceStudioResponse{
		State:        string(snap.State),
		Error:        snap.Error,
		SourceFilter: normalizeFilter(sourceFilter),
		Sources:      []string{},
		Events:       []EventView{},
		Groups:       []GroupView{},
	}

	view := snap.View
	if view == nil {
		return resp
	}

	resp.TraceID = view.TraceID
	resp.WarehouseID = view.WarehouseID
	resp.FocusRef = view.FocusRef
	resp.FetchedAt = view.FetchedAt.UTC().Format(time.RFC3339)
	resp.Sources = view.Sources

	filtered := ettrace.FilterBySource(view.Events, resp.SourceFilter)
	for i := range filtered {
		resp.Events = append(resp.Events, fromEvent(&filtered[i], view.TraceID, view.FocusRef))
	}

	for _, group := range ettrace.GroupByRef(filtered) {
		gv := GroupView{Ref: group.Ref, Count: len(group.Events), Events: []EventView{}}
		for i := range group.Events {
			gv.Events = append(gv.Events, fromEvent(&group.Events[i], view.TraceID, view.FocusRef))
		}
		resp.Groups = append(resp.Groups, gv)
	}

	return resp
}

// fromEvent 单事件视图：规范化字段 + 分类 + 链接派生
func fromEvent(e *ettrace.TraceEvent, traceID, focusRef string) EventView {
	c := ettrace.Classify(e)

	ev := EventView{
		Source:       e.Source,
		Kind:         e.Kind,
		Ref:          e.Ref,
		TraceID:      e.TraceID,
		WarehouseID:  e.WarehouseID,
		ItemID:       e.ItemID,
		BatchCode:    e.BatchCode,
		MovementType: e.MovementType,
		Summary:      e.Summary,
		Badge:        c.Badge,
		Icon:         c.Icon,
		Label:        c.Label,
		Explanation:  c.Explanation,
		Links:        diaglink.EventLinks(e, traceID),
		Focused:      focusRef != "" && e.Ref == focusRef,
		Raw:          e.Raw,
	}

	if e.Timestamp != nil {
		ev.Timestamp = e.Timestamp.UTC().Format(time.RFC3339)
	}

	for _, issue := range e.Issues {
		ev.Issues = append(ev.Issues, IssueView{
			Code:     issue.Code,
			Message:  issue.Message,
			Severity: issue.Severity,
		})
	}

	if c.Routing != nil {
		ev.Routing = &RoutingView{
			WarehouseID: c.Routing.WarehouseID,
			Mode:        c.Routing.Mode,
			Candidates:  c.Routing.Candidates,
		}
	}

	return ev
}

func normalizeFilter(selected string) string {
	if selected == "" {
		return ettrace.FilterAll
	}
	return selected
}
