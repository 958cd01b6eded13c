package svtrace

import (
	"context"
	"time"

	"opsdash/studio/internal/app/domains/entity/ettrace"
	"opsdash/studio/internal/app/infra/upstream"
	"opsdash/studio/internal/app/pkg/errorx"
)

// TraceFetcher trace 原始事件的获取接口（便于测试替换）
type TraceFetcher interface {
	FetchTrace(ctx context.Context, traceID string, warehouseID int64) (*upstream.TracePayload, error)
}

// Query 一次关联查询的输入
// WarehouseID 是服务端过滤条件；FocusRef 只用于前端高亮/滚动定位，不参与过滤。
type Query struct {
	TraceID     string
	WarehouseID int64
	FocusRef    string
}

// StudioView 一次查询装配出的调查视图（请求期内的不可变快照）
type StudioView struct {
	TraceID     string
	WarehouseID int64
	FocusRef    string
	Events      []ettrace.TraceEvent // 已规范化并按时间升序
	Sources     []string             // 基础列表派生的来源集合
	Groups      []ettrace.Group      // 按 ref 分组，组内时间升序
	FetchedAt   time.Time
}

// Service 无状态的视图装配流水线：拉取 → 规范化 → 排序 → 派生来源 → 分组
type Service struct {
	fetcher TraceFetcher
}

// NewService 创建视图装配服务
func NewService(fetcher TraceFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// BuildView 装配一条 trace 的完整视图
func (s *Service) BuildView(ctx context.Context, q Query) (*StudioView, error) {
	if q.TraceID == "" {
		return nil, errorx.ErrTraceIDRequired
	}

	payload, err := s.fetcher.FetchTrace(ctx, q.TraceID, q.WarehouseID)
	if err != nil {
		return nil, err
	}

	events := ettrace.NormalizeAll(payload.Events)
	ettrace.SortByTime(events)

	return &StudioView{
		TraceID:     q.TraceID,
		WarehouseID: q.WarehouseID,
		FocusRef:    q.FocusRef,
		Events:      events,
		Sources:     ettrace.Sources(events),
		Groups:      ettrace.GroupByRef(events),
		FetchedAt:   time.Now(),
	}, nil
}
