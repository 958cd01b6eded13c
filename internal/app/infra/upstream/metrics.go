package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 上游调用指标
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Total number of upstream requests by endpoint and status.",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studio",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Upstream request latency by endpoint.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})
)
