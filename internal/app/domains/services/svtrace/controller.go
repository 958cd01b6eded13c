package svtrace

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"opsdash/studio/internal/app/pkg/errorx"
)

// State 控制器状态机：idle → loading → {success, error}，任意状态可被新查询重入
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Snapshot 控制器状态的只读快照
// 失败的刷新不会清掉此前成功的视图：View 始终是最近一次成功结果。
type Snapshot struct {
	State        State
	View         *StudioView
	Error        string
	ExpandedRefs []string
}

// Controller 关联视图控制器
// 每个控制器实例独占自身状态，多个同时打开的诊断视图互不竞争。
// 取舍：用发起时捕获的序号（issue token）做逻辑取消——被更新查询
// 取代的请求在提交前发现序号过期即丢弃结果，保证展示的永远是
// 最近一次"发起"的查询，而不是最近一次"返回"的。
type Controller struct {
	svc *Service
	seq atomic.Int64

	mu       sync.Mutex
	state    State
	view     *StudioView
	lastErr  string
	expanded map[string]bool
}

// NewController 创建空闲态控制器
func NewController(svc *Service) *Controller {
	return &Controller{
		svc:      svc,
		state:    StateIdle,
		expanded: make(map[string]bool),
	}
}

// NewSeededController 带种子查询创建控制器并立即发起首载（深链场景）
// 首载失败不阻断创建：错误进入状态机，由调用方通过 Snapshot 观察。
func NewSeededController(ctx context.Context, svc *Service, q Query) *Controller {
	c := NewController(svc)
	_, _ = c.Load(ctx, q)
	return c
}

// Load 发起一次查询并等待结果提交
// 返回的 Snapshot 反映本次调用后的状态；若本次查询在等待期间被更新的
// 查询取代，返回 errorx.ErrQuerySuperseded 且不触碰任何状态。
func (c *Controller) Load(ctx context.Context, q Query) (Snapshot, error) {
	token := c.seq.Inc()

	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	// 悬挂点：拉取期间不持锁，旧视图继续可见
	view, err := c.svc.BuildView(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	// 序号过期说明有更新的查询已发起，丢弃本次结果
	if token != c.seq.Load() {
		return c.snapshotLocked(), errorx.ErrQuerySuperseded
	}

	if err != nil {
		// 错误终止本次查询，但保留此前成功的视图
		c.state = StateError
		c.lastErr = err.Error()
		return c.snapshotLocked(), err
	}

	c.state = StateSuccess
	c.view = view
	c.lastErr = ""
	// 新结果重置分组展开等 UI 状态
	c.expanded = make(map[string]bool)

	return c.snapshotLocked(), nil
}

// Snapshot 读取当前状态快照
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// ToggleGroup 切换分组的展开状态，返回切换后的值
func (c *Controller) ToggleGroup(ref string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[ref] = !c.expanded[ref]
	return c.expanded[ref]
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State: c.state,
		View:  c.view,
		Error: c.lastErr,
	}
	for ref, open := range c.expanded {
		if open {
			snap.ExpandedRefs = append(snap.ExpandedRefs, ref)
		}
	}
	return snap
}
