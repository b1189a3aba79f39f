// Package metrics 基于 Prometheus 暴露 HTTP 与上游调用指标。
// 所有方法在接收者为 nil 时都是 no-op，方便在测试中省略。
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mindmate-go/pkg/llm"
)

const namespace = "mindmate"

// Metrics 持有一个独立的 registry 以及全部指标。
type Metrics struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	fallbacks        *prometheus.CounterVec
	emojiOnly        prometheus.Counter
}

// New 创建并注册全部指标。
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Chat completion calls by model and outcome.",
		}, []string{"model", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Chat completion latency by model.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"model"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_replies_total",
			Help:      "Responses that used a hard-coded fallback because the upstream returned no usable text.",
		}, []string{"endpoint"}),
		emojiOnly: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emoji_only_messages_total",
			Help:      "Messages routed to the short emoji branch.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.upstreamRequests,
		m.upstreamDuration,
		m.fallbacks,
		m.emojiOnly,
	)
	return m
}

// Registry 返回底层 registry，主要供测试读取指标。
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler 返回 /metrics 的 http.Handler。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest 记录一次 HTTP 请求。
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Fallback 记录一次兜底回复。
func (m *Metrics) Fallback(endpoint string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(endpoint).Inc()
}

// EmojiOnly 记录一次命中 emoji 分支的消息。
func (m *Metrics) EmojiOnly() {
	if m == nil {
		return
	}
	m.emojiOnly.Inc()
}

// InstrumentClient 包装 llm.Client，记录每次上游调用的耗时与结果。
func (m *Metrics) InstrumentClient(c llm.Client) llm.Client {
	if m == nil {
		return c
	}
	return &instrumentedClient{next: c, m: m}
}

type instrumentedClient struct {
	next llm.Client
	m    *Metrics
}

func (c *instrumentedClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	start := time.Now()
	text, err := c.next.Complete(ctx, req)
	c.m.upstreamDuration.WithLabelValues(req.Model).Observe(time.Since(start).Seconds())

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case text == "":
		outcome = "empty"
	}
	c.m.upstreamRequests.WithLabelValues(req.Model, outcome).Inc()
	return text, err
}
