package svtrace

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdash/studio/internal/app/infra/upstream"
	"opsdash/studio/internal/app/pkg/errorx"
)

// gatedFetcher 可控的 trace 获取桩：每个 trace_id 一个放行闸门
type gatedFetcher struct {
	mu       sync.Mutex
	started  chan string
	gates    map[string]chan struct{}
	payloads map[string]*upstream.TracePayload
	errs     map[string]error
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{
		started:  make(chan string, 8),
		gates:    make(map[string]chan struct{}),
		payloads: make(map[string]*upstream.TracePayload),
		errs:     make(map[string]error),
	}
}

func (f *gatedFetcher) gate(traceID string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := make(chan struct{})
	f.gates[traceID] = g
	return g
}

func (f *gatedFetcher) FetchTrace(_ context.Context, traceID string, _ int64) (*upstream.TracePayload, error) {
	f.mu.Lock()
	g := f.gates[traceID]
	payload := f.payloads[traceID]
	err := f.errs[traceID]
	f.mu.Unlock()

	f.started <- traceID
	if g != nil {
		<-g
	}

	if err != nil {
		return nil, err
	}
	if payload != nil {
		return payload, nil
	}
	return &upstream.TracePayload{TraceID: traceID}, nil
}

func awaitStart(t *testing.T, f *gatedFetcher, want string) {
	t.Helper()
	select {
	case got := <-f.started:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("fetch of %s never started", want)
	}
}

type loadResult struct {
	snap Snapshot
	err  error
}

func TestControllerSupersededQueryDiscarded(t *testing.T) {
	fetcher := newGatedFetcher()
	gateA := fetcher.gate("A")
	gateB := fetcher.gate("B")

	ctrl := NewController(NewService(fetcher))

	resultA := make(chan loadResult, 1)
	go func() {
		snap, err := ctrl.Load(context.Background(), Query{TraceID: "A"})
		resultA <- loadResult{snap, err}
	}()
	awaitStart(t, fetcher, "A")

	resultB := make(chan loadResult, 1)
	go func() {
		snap, err := ctrl.Load(context.Background(), Query{TraceID: "B"})
		resultB <- loadResult{snap, err}
	}()
	awaitStart(t, fetcher, "B")

	// B 先返回并提交
	close(gateB)
	rb := <-resultB
	require.NoError(t, rb.err)
	assert.Equal(t, StateSuccess, rb.snap.State)
	assert.Equal(t, "B", rb.snap.View.TraceID)

	// A 迟到返回：必须被丢弃，展示的仍是 B 的结果
	close(gateA)
	ra := <-resultA
	assert.ErrorIs(t, ra.err, errorx.ErrQuerySuperseded)

	snap := ctrl.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	assert.Equal(t, "B", snap.View.TraceID)
}

func TestControllerErrorKeepsLastGoodView(t *testing.T) {
	fetcher := newGatedFetcher()
	fetcher.payloads["T"] = &upstream.TracePayload{
		TraceID: "T",
		Events:  []interface{}{map[string]interface{}{"source": "ledger"}},
	}

	ctrl := NewController(NewService(fetcher))

	snap, err := ctrl.Load(context.Background(), Query{TraceID: "T"})
	require.NoError(t, err)
	require.Equal(t, StateSuccess, snap.State)
	require.Len(t, snap.View.Events, 1)

	// 刷新失败：状态进入 error，但此前成功的视图不被清空
	fetcher.mu.Lock()
	fetcher.errs["T"] = errors.New("upstream down")
	fetcher.mu.Unlock()

	snap, err = ctrl.Load(context.Background(), Query{TraceID: "T"})
	assert.Error(t, err)
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, "upstream down", snap.Error)
	require.NotNil(t, snap.View)
	assert.Len(t, snap.View.Events, 1)
}

func TestControllerMissingTraceID(t *testing.T) {
	ctrl := NewController(NewService(newGatedFetcher()))

	snap, err := ctrl.Load(context.Background(), Query{})

	assert.ErrorIs(t, err, errorx.ErrTraceIDRequired)
	assert.Equal(t, StateError, snap.State)
	assert.Nil(t, snap.View)
}

func TestControllerSuccessResetsExpandedGroups(t *testing.T) {
	fetcher := newGatedFetcher()
	ctrl := NewController(NewService(fetcher))

	_, err := ctrl.Load(context.Background(), Query{TraceID: "T"})
	require.NoError(t, err)

	ctrl.ToggleGroup("ORD-1")
	require.Contains(t, ctrl.Snapshot().ExpandedRefs, "ORD-1")

	// 新结果提交后，分组展开状态重置
	_, err = ctrl.Load(context.Background(), Query{TraceID: "T"})
	require.NoError(t, err)
	assert.Empty(t, ctrl.Snapshot().ExpandedRefs)
}

func TestNewSeededControllerLoadsImmediately(t *testing.T) {
	fetcher := newGatedFetcher()

	ctrl := NewSeededController(context.Background(), NewService(fetcher), Query{TraceID: "SEED"})

	snap := ctrl.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	require.NotNil(t, snap.View)
	assert.Equal(t, "SEED", snap.View.TraceID)
}

func TestNewControllerStartsIdle(t *testing.T) {
	ctrl := NewController(NewService(newGatedFetcher()))

	snap := ctrl.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.View)
}

func TestServiceBuildViewPipeline(t *testing.T) {
	fetcher := newGatedFetcher()
	fetcher.payloads["T"] = &upstream.TracePayload{
		TraceID: "T",
		Events: []interface{}{
			map[string]interface{}{"source": "ledger", "ref": "B", "ts": "2024-06-01T12:00:00Z"},
			map[string]interface{}{"source": "audit", "ref": "A", "ts": "2024-06-01T10:00:00Z"},
			map[string]interface{}{"source": "ledger", "ref": "A", "ts": "2024-06-01T11:00:00Z"},
		},
	}

	view, err := NewService(fetcher).BuildView(context.Background(), Query{TraceID: "T", FocusRef: "A"})
	require.NoError(t, err)

	// 时间线升序
	assert.Equal(t, "A", view.Events[0].Ref)
	assert.Equal(t, "A", view.Events[1].Ref)
	assert.Equal(t, "B", view.Events[2].Ref)

	// 来源集合与分组派生完成
	assert.Equal(t, []string{"audit", "ledger"}, view.Sources)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "A", view.Groups[0].Ref)
	assert.Equal(t, "A", view.FocusRef)
}
