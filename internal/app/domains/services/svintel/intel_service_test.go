package svintel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdash/studio/internal/app/domains/entity/etintel"
	"opsdash/studio/internal/app/domains/entity/etledger"
)

// fakeIntelFetcher 可按端点注入数据或错误的桩
type fakeIntelFetcher struct {
	insights  *etintel.InsightsPayload
	anomalies []etintel.ReconciliationRow
	ageing    []etintel.AgeingRow
	autoheal  []etintel.AutohealSuggestion
	predict   []etintel.PredictRow
	page      *etledger.Page

	failEndpoint string
	ledgerFilter etledger.Filter
}

var errEndpointDown = errors.New("endpoint down")

func (f *fakeIntelFetcher) FetchInsights(context.Context) (*etintel.InsightsPayload, error) {
	if f.failEndpoint == "insights" {
		return nil, errEndpointDown
	}
	return f.insights, nil
}

func (f *fakeIntelFetcher) FetchAnomalies(context.Context) ([]etintel.ReconciliationRow, error) {
	if f.failEndpoint == "anomalies" {
		return nil, errEndpointDown
	}
	return f.anomalies, nil
}

func (f *fakeIntelFetcher) FetchAgeing(context.Context) ([]etintel.AgeingRow, error) {
	if f.failEndpoint == "ageing" {
		return nil, errEndpointDown
	}
	return f.ageing, nil
}

func (f *fakeIntelFetcher) FetchAutoheal(context.Context) ([]etintel.AutohealSuggestion, error) {
	if f.failEndpoint == "autoheal" {
		return nil, errEndpointDown
	}
	return f.autoheal, nil
}

func (f *fakeIntelFetcher) FetchPredict(context.Context) ([]etintel.PredictRow, error) {
	if f.failEndpoint == "predict" {
		return nil, errEndpointDown
	}
	return f.predict, nil
}

func (f *fakeIntelFetcher) QueryLedger(_ context.Context, filter etledger.Filter) (*etledger.Page, error) {
	if f.failEndpoint == "ledger" {
		return nil, errEndpointDown
	}
	f.ledgerFilter = filter
	return f.page, nil
}

func TestBuildOverview(t *testing.T) {
	fetcher := &fakeIntelFetcher{
		insights: &etintel.InsightsPayload{
			Cards: []etintel.InsightCard{{Title: "库存周转", Severity: "info"}},
		},
		anomalies: []etintel.ReconciliationRow{
			{WarehouseID: 1, ItemID: 100, DiffVsStock: -2},
			{WarehouseID: 1, ItemID: 101},
			{WarehouseID: 2, ItemID: 100, DiffVsSnapshot: 3},
		},
		ageing: []etintel.AgeingRow{
			{BatchCode: "B-LATE", DaysLeft: 30, RiskLevel: etintel.RiskLow},
			{BatchCode: "B-SOON", DaysLeft: 2, RiskLevel: etintel.RiskHigh},
		},
		autoheal: []etintel.AutohealSuggestion{{WarehouseID: 1, ItemID: 100}},
		predict:  []etintel.PredictRow{{ItemID: 100, AvgDailyOutbound: 2.5}},
	}

	overview, err := NewService(fetcher, 0).BuildOverview(context.Background())
	require.NoError(t, err)

	// diff 全零的行不计入 mismatch
	assert.Equal(t, 2, overview.MismatchCount)
	assert.Len(t, overview.Anomalies, 3)

	// 临期行按剩余天数升序返回
	require.Len(t, overview.Ageing, 2)
	assert.Equal(t, "B-SOON", overview.Ageing[0].BatchCode)
	assert.Equal(t, "B-LATE", overview.Ageing[1].BatchCode)

	require.NotNil(t, overview.Insights)
	assert.Len(t, overview.Autoheal, 1)
	assert.Len(t, overview.Predict, 1)
}

func TestBuildOverviewAnyEndpointFailureFailsAll(t *testing.T) {
	for _, endpoint := range []string{"insights", "anomalies", "ageing", "autoheal", "predict"} {
		t.Run(endpoint, func(t *testing.T) {
			fetcher := &fakeIntelFetcher{failEndpoint: endpoint}

			overview, err := NewService(fetcher, 0).BuildOverview(context.Background())

			assert.ErrorIs(t, err, errEndpointDown)
			assert.Nil(t, overview)
		})
	}
}

func TestHotItems(t *testing.T) {
	fetcher := &fakeIntelFetcher{
		page: &etledger.Page{
			Total: 4,
			Items: []etledger.Row{
				{ItemID: 1, Delta: -5},
				{ItemID: 2, Delta: -1},
				{ItemID: 1, Delta: -3},
				{ItemID: 1, Delta: 10},
			},
		},
	}

	items, err := NewService(fetcher, 500).HotItems(context.Background(), 7, 10)
	require.NoError(t, err)

	// 聚合只计出库（负 delta），入库行不进入统计
	require.Len(t, items, 2)
	assert.Equal(t, etintel.HotItem{ItemID: 1, TotalOutbound: 8, Events: 2}, items[0])
	assert.Equal(t, etintel.HotItem{ItemID: 2, TotalOutbound: 1, Events: 1}, items[1])

	// 拉取窗口使用服务配置的单页上限
	assert.Equal(t, 500, fetcher.ledgerFilter.Limit)
	assert.NotEmpty(t, fetcher.ledgerFilter.TimeFrom)
}

func TestHotItemsLedgerFailure(t *testing.T) {
	fetcher := &fakeIntelFetcher{failEndpoint: "ledger"}

	items, err := NewService(fetcher, 0).HotItems(context.Background(), 7, 10)

	assert.ErrorIs(t, err, errEndpointDown)
	assert.Nil(t, items)
}
