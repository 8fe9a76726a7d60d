package metrics_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"tourmap/pkg/middleware"
)

var Module = fx.Provide(
	provideMetrics)

func provideMetrics() *middleware.Metrics {
	return middleware.NewMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}
