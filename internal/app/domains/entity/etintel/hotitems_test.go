package etintel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdash/studio/internal/app/domains/entity/etledger"
)

func TestTopOutboundItems(t *testing.T) {
	rows := []etledger.Row{
		{ItemID: 1, Delta: -5},
		{ItemID: 1, Delta: -3},
		{ItemID: 2, Delta: 10},
		{ItemID: 2, Delta: -1},
	}

	got := TopOutboundItems(rows, 2)

	// 正 delta 永不计入出库量；有出库事件的商品即便另有入库也要出现
	require.Len(t, got, 2)
	assert.Equal(t, HotItem{ItemID: 1, TotalOutbound: 8, Events: 2}, got[0])
	assert.Equal(t, HotItem{ItemID: 2, TotalOutbound: 1, Events: 1}, got[1])
}

func TestTopOutboundItemsOmitsPureInbound(t *testing.T) {
	rows := []etledger.Row{
		{ItemID: 7, Delta: 20},
		{ItemID: 7, Delta: 5},
		{ItemID: 8, Delta: -2},
	}

	got := TopOutboundItems(rows, 10)

	// 窗口内没有出库事件的商品不出现（不是补零值条目）
	require.Len(t, got, 1)
	assert.Equal(t, int64(8), got[0].ItemID)
}

func TestTopOutboundItemsTruncates(t *testing.T) {
	rows := []etledger.Row{
		{ItemID: 1, Delta: -1},
		{ItemID: 2, Delta: -2},
		{ItemID: 3, Delta: -3},
	}

	got := TopOutboundItems(rows, 2)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ItemID)
	assert.Equal(t, int64(2), got[1].ItemID)
}

func TestTopOutboundItemsDeterministicTieBreak(t *testing.T) {
	rows := []etledger.Row{
		{ItemID: 9, Delta: -4},
		{ItemID: 3, Delta: -4},
	}

	got := TopOutboundItems(rows, 10)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ItemID)
	assert.Equal(t, int64(9), got[1].ItemID)
}

func TestTopOutboundItemsEmptyInput(t *testing.T) {
	assert.Empty(t, TopOutboundItems(nil, 5))
}
