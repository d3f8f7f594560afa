package metrics

import (
	"net/http"

	"offerengine/config"
	"offerengine/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Result exposes the recorder and, when metrics are enabled, the scrape handler
// and the registry infrastructure collectors (such as the Postgres pool) attach to.
type Result struct {
	fx.Out

	Recorder service.MetricsRecorder
	Handler  http.Handler          `name:"metricsHandler"`
	Registry prometheus.Registerer `name:"metricsRegistry"`
}

// New builds a registry-backed recorder when metrics are enabled, otherwise a no-op recorder
// and a nil handler.
func New(cfg *config.Config) Result {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return Result{Recorder: NewRecorder(nil)}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Result{
		Recorder: NewRecorder(registry),
		Handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Registry: registry,
	}
}
