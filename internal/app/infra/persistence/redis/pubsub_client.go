package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PubSubClient Redis Pub/Sub 客户端封装
// 后端在 trace 有新事件落库时向约定频道发一条通知，
// Studio 的长轮询接口借此实现调查视图的准实时刷新。
type PubSubClient struct {
	rdb *redis.Client
}

// NewPubSubClient 创建 Pub/Sub 客户端，支持密码认证
func NewPubSubClient(addr, password string, db int) (*PubSubClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &PubSubClient{rdb: rdb}, nil
}

// RefreshChannel trace 刷新通知的频道命名规则
func RefreshChannel(traceID string) string {
	return fmt.Sprintf("trace:refresh:%s", traceID)
}

// WaitForRefresh 订阅指定 trace 的刷新频道并等待一条通知，支持超时控制
func (c *PubSubClient) WaitForRefresh(ctx context.Context, traceID string, timeout time.Duration) error {
	sub := c.rdb.Subscribe(ctx, RefreshChannel(traceID))
	defer sub.Close()

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case <-sub.Channel():
		return nil
	case <-timeoutCtx.Done():
		return timeoutCtx.Err()
	}
}

// NotifyRefresh 发布刷新通知（供后端或测试使用）
func (c *PubSubClient) NotifyRefresh(ctx context.Context, traceID string) error {
	return c.rdb.Publish(ctx, RefreshChannel(traceID), "refresh").Err()
}

// Close 关闭连接
func (c *PubSubClient) Close() error {
	return c.rdb.Close()
}
