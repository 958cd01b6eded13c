package errorx

import "errors"

// 定义业务错误
var (
	ErrTraceIDRequired     = errors.New("trace_id is required")
	ErrTraceNotFound       = errors.New("trace not found")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrQuerySuperseded     = errors.New("query superseded by a newer one")
	ErrWaitTimeout         = errors.New("wait for refresh timed out")
)

// UpstreamError 上游调用失败（保留状态码用于透传判断）
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

// Error 实现 error 接口
func (e *UpstreamError) Error() string {
	return e.Message
}

// NewUpstreamError 创建上游错误
func NewUpstreamError(endpoint string, statusCode int, message string) *UpstreamError {
	return &UpstreamError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}
