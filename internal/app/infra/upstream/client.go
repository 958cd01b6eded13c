package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"opsdash/studio/internal/app/domains/entity/etintel"
	"opsdash/studio/internal/app/domains/entity/etledger"
	"opsdash/studio/internal/app/pkg/errorx"
)

// TracePayload GET /debug/trace/{trace_id} 的响应
// Events 保持未解码的宽松形状，规范化交给 ettrace.Normalize。
type TracePayload struct {
	TraceID     string        `json:"trace_id"`
	WarehouseID int64         `json:"warehouse_id,omitempty"`
	Events      []interface{} `json:"events"`
}

// Client 后端采集服务的 HTTP 客户端封装
// 本层对后端只读：所有业务计算（对账、FEFO、路由、预测）都在上游完成。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建上游客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchTrace 拉取一条 trace 的全部原始事件，warehouseID > 0 时服务端过滤
func (c *Client) FetchTrace(ctx context.Context, traceID string, warehouseID int64) (*TracePayload, error) {
	path := "/debug/trace/" + url.PathEscape(traceID)
	if warehouseID > 0 {
		path += "?warehouse_id=" + strconv.FormatInt(warehouseID, 10)
	}

	var payload TracePayload
	if err := c.doJSON(ctx, http.MethodGet, path, "trace", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// QueryLedger 查询台账流水
func (c *Client) QueryLedger(ctx context.Context, filter etledger.Filter) (*etledger.Page, error) {
	var page etledger.Page
	if err := c.doJSON(ctx, http.MethodPost, "/stock/ledger/query", "ledger_query", filter, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchInsights 拉取概览卡片
func (c *Client) FetchInsights(ctx context.Context) (*etintel.InsightsPayload, error) {
	var payload etintel.InsightsPayload
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/intelligence/insights", "insights", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchAnomalies 拉取三方对账行
func (c *Client) FetchAnomalies(ctx context.Context) ([]etintel.ReconciliationRow, error) {
	var rows []etintel.ReconciliationRow
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/intelligence/anomaly", "anomaly", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchAgeing 拉取批次临期风险行
func (c *Client) FetchAgeing(ctx context.Context) ([]etintel.AgeingRow, error) {
	var rows []etintel.AgeingRow
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/intelligence/ageing", "ageing", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchAutoheal 拉取自愈建议
func (c *Client) FetchAutoheal(ctx context.Context) ([]etintel.AutohealSuggestion, error) {
	var rows []etintel.AutohealSuggestion
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/intelligence/autoheal", "autoheal", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchPredict 拉取断货预测
func (c *Client) FetchPredict(ctx context.Context) ([]etintel.PredictRow, error) {
	var rows []etintel.PredictRow
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/intelligence/predict", "predict", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// doJSON 发起请求并解码 JSON 响应，统一打点与错误包装
func (c *Client) doJSON(ctx context.Context, method, path, endpoint string, body, out interface{}) error {
	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request failed: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("%w: %v", errorx.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusNotFound && endpoint == "trace" {
		return errorx.ErrTraceNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errorx.NewUpstreamError(endpoint, resp.StatusCode,
			fmt.Sprintf("upstream %s returned %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response failed: %w", endpoint, err)
	}
	return nil
}
