package trace

import (
	"sync"

	"opsdash/studio/internal/app/domains/services/svtrace"
	"opsdash/studio/internal/app/infra/persistence/redis"
	"opsdash/studio/internal/app/pkg/logger"
)

// TraceHandler Trace Studio HTTP 处理器
// 每个 trace_id 对应一个关联视图控制器（会话内存态，不落盘）：
// 同一视图的重复刷新共享状态机，失败的刷新不会清掉此前成功的结果。
type TraceHandler struct {
	traceService *svtrace.Service
	pubsub       *redis.PubSubClient // 可为 nil：未配置 Redis 时长轮询接口降级
	log          logger.Logger

	controllers sync.Map // trace_id -> *svtrace.Controller
}

// NewTraceHandler 创建 Trace Studio 处理器
func NewTraceHandler(traceService *svtrace.Service, pubsub *redis.PubSubClient, log logger.Logger) *TraceHandler {
	return &TraceHandler{
		traceService: traceService,
		pubsub:       pubsub,
		log:          log,
	}
}

// controllerFor 取（或创建）指定 trace 的控制器
func (h *TraceHandler) controllerFor(traceID string) *svtrace.Controller {
	if ctrl, ok := h.controllers.Load(traceID); ok {
		return ctrl.(*svtrace.Controller)
	}

	ctrl, _ := h.controllers.LoadOrStore(traceID, svtrace.NewController(h.traceService))
	return ctrl.(*svtrace.Controller)
}
