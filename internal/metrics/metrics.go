// metrics — prometheus-коллекторы гейтвея.
//
// Коллекторы регистрируются в дефолтном реестре; /metrics отдаёт promhttp
// на отдельном порту (cmd/cms-gateway).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests — исходящие запросы к backend API по методу и HTTP-коду.
	// Код "error" означает транспортный сбой без ответа.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cms_upstream_requests_total",
		Help: "Outgoing requests to the POS backend API by method and status code.",
	}, []string{"method", "code"})

	// UpstreamDuration — длительность исходящих запросов по методу.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cms_upstream_request_duration_seconds",
		Help:    "Latency of requests to the POS backend API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// TokenRefresh — попытки обмена refresh-токена: result = ok|failed|precondition.
	TokenRefresh = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cms_token_refresh_total",
		Help: "Token refresh exchanges by result.",
	}, []string{"result"})
)
