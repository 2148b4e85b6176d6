package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 装饰管线结果标签
const (
	outcomeAlreadyDecorated = "already_decorated"
	outcomeDecorated        = "decorated"
	outcomeRefused          = "refused"
	outcomeError            = "error"
	outcomeMissingConnID    = "missing_conn_id"
)

// 装饰管线指标，仅用于诊断，不参与任何决策
var (
	decorationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "middleware_registrar",
		Name:      "decorations_total",
		Help:      "Decoration pipeline outcomes by result.",
	}, []string{"outcome"})

	handlerPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "middleware_registrar",
		Name:      "handler_panics_total",
		Help:      "Stream handler panics recovered by the dispatch pipeline.",
	})
)
