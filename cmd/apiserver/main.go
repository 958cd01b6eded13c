package main

// @title           Ops Dashboard Studio API
// @version         1.0
// @description     仓储履约平台运维看板的诊断网关，提供 Trace Studio、台账/库存工具与智能看板接口
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8090
// @BasePath  /api/v1

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opsdash/studio/internal/app/config"
	"opsdash/studio/internal/app/domains/services/svintel"
	"opsdash/studio/internal/app/domains/services/svtrace"
	"opsdash/studio/internal/app/infra/persistence/redis"
	"opsdash/studio/internal/app/infra/upstream"
	"opsdash/studio/internal/app/pkg/logger"
	"opsdash/studio/internal/app/server/handlers/intelligence"
	"opsdash/studio/internal/app/server/handlers/tools"
	"opsdash/studio/internal/app/server/handlers/trace"
	"opsdash/studio/internal/app/server/routers"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 初始化上游客户端
	upstreamClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	// 4. 初始化 Redis（可选：未配置时长轮询接口降级为不可用）
	var pubsub *redis.PubSubClient
	if cfg.Redis.Addr != "" {
		pubsub, err = redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer pubsub.Close()
	}

	// 5. 装配服务与处理器
	traceService := svtrace.NewService(upstreamClient)
	intelService := svintel.NewService(upstreamClient, cfg.Intel.HotItemsQueryLimit)

	traceHandler := trace.NewTraceHandler(traceService, pubsub, zapLogger)
	toolsHandler := tools.NewToolsHandler(upstreamClient, zapLogger)
	intelHandler := intelligence.NewIntelHandler(intelService,
		cfg.Intel.HotItemsDefaultDays, cfg.Intel.HotItemsDefaultLimit, zapLogger)

	engine := routers.SetupRoutes(traceHandler, toolsHandler, intelHandler, zapLogger)

	// 6. 启动 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 7. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrChan:
		log.Fatalf("HTTP server failed: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}

	log.Println("Server exited")
}
