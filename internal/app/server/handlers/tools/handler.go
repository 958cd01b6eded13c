package tools

import (
	"opsdash/studio/internal/app/infra/upstream"
	"opsdash/studio/internal/app/pkg/logger"
)

// ToolsHandler 台账/库存诊断工具的 HTTP 处理器
// 每个工具只解码自己的查询契约，跨工具跳转一律通过 diaglink 协议生成。
type ToolsHandler struct {
	upstream *upstream.Client
	log      logger.Logger
}

// NewToolsHandler 创建工具处理器
func NewToolsHandler(client *upstream.Client, log logger.Logger) *ToolsHandler {
	return &ToolsHandler{
		upstream: client,
		log:      log,
	}
}
