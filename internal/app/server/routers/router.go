package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"opsdash/studio/internal/app/pkg/logger"
	"opsdash/studio/internal/app/server/handlers/intelligence"
	"opsdash/studio/internal/app/server/handlers/tools"
	"opsdash/studio/internal/app/server/handlers/trace"
	"opsdash/studio/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	traceHandler *trace.TraceHandler,
	toolsHandler *tools.ToolsHandler,
	intelHandler *intelligence.IntelHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.CORS())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.AccessLog(log))
	r.Use(middlewares.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "studio",
			"message": "Service is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		traces := v1.Group("/trace")
		{
			traces.GET("/:trace_id", traceHandler.Get)
			traces.GET("/:trace_id/wait", traceHandler.Wait)
		}

		toolsGroup := v1.Group("/tools")
		{
			toolsGroup.POST("/ledger/query", toolsHandler.QueryLedger)
			toolsGroup.GET("/stocks", toolsHandler.GetStocks)
		}

		intel := v1.Group("/intelligence")
		{
			intel.GET("/overview", intelHandler.Overview)
			intel.GET("/hot-items", intelHandler.HotItems)
		}
	}

	return r
}
