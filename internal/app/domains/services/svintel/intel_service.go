package svintel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"opsdash/studio/internal/app/domains/entity/etintel"
	"opsdash/studio/internal/app/domains/entity/etledger"
)

// IntelFetcher 智能看板数据的获取接口（便于测试替换）
type IntelFetcher interface {
	FetchInsights(ctx context.Context) (*etintel.InsightsPayload, error)
	FetchAnomalies(ctx context.Context) ([]etintel.ReconciliationRow, error)
	FetchAgeing(ctx context.Context) ([]etintel.AgeingRow, error)
	FetchAutoheal(ctx context.Context) ([]etintel.AutohealSuggestion, error)
	FetchPredict(ctx context.Context) ([]etintel.PredictRow, error)
	QueryLedger(ctx context.Context, filter etledger.Filter) (*etledger.Page, error)
}

// Overview 智能看板一次性装配的聚合视图
type Overview struct {
	Insights      *etintel.InsightsPayload
	Anomalies     []etintel.ReconciliationRow
	MismatchCount int // 非零 diff 的行数（只计数，不掩盖单行分歧）
	Ageing        []etintel.AgeingRow
	Autoheal      []etintel.AutohealSuggestion
	Predict       []etintel.PredictRow
}

// Service 智能看板服务：对五个后端端点做并行扇出，再做仅有的两项客户端逻辑
// （临期行排序分桶、出库热度聚合），其余数据一律原样透传。
type Service struct {
	fetcher         IntelFetcher
	ledgerPageLimit int
}

// NewService 创建智能看板服务
// ledgerPageLimit 是热度聚合单次拉取台账明细的上限
func NewService(fetcher IntelFetcher, ledgerPageLimit int) *Service {
	if ledgerPageLimit <= 0 {
		ledgerPageLimit = 1000
	}
	return &Service{fetcher: fetcher, ledgerPageLimit: ledgerPageLimit}
}

// BuildOverview 并行拉取五个端点并装配总览
// 任一端点失败则整体失败：看板宁可报错，也不渲染残缺的对账结论。
func (s *Service) BuildOverview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		insights, err := s.fetcher.FetchInsights(gctx)
		overview.Insights = insights
		return err
	})
	g.Go(func() error {
		rows, err := s.fetcher.FetchAnomalies(gctx)
		overview.Anomalies = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.fetcher.FetchAgeing(gctx)
		overview.Ageing = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.fetcher.FetchAutoheal(gctx)
		overview.Autoheal = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.fetcher.FetchPredict(gctx)
		overview.Predict = rows
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	etintel.SortAgeing(overview.Ageing)
	for _, row := range overview.Anomalies {
		if row.DiffVsStock != 0 || row.DiffVsSnapshot != 0 {
			overview.MismatchCount++
		}
	}

	return &overview, nil
}

// HotItems 出库热度 Top-N：拉取窗口内的台账明细后做客户端聚合
func (s *Service) HotItems(ctx context.Context, days, limit int) ([]etintel.HotItem, error) {
	timeFrom := time.Now().AddDate(0, 0, -days).UTC().Format(time.RFC3339)

	page, err := s.fetcher.QueryLedger(ctx, etledger.Filter{
		TimeFrom: timeFrom,
		Limit:    s.ledgerPageLimit,
	})
	if err != nil {
		return nil, err
	}

	return etintel.TopOutboundItems(page.Items, limit), nil
}
