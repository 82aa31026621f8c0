package telemetry

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fieldcfg/internal/field"
	"fieldcfg/internal/logging"
)

var (
	// Fields counts configured fields by kind and validity.
	Fields = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fieldcfg_fields",
		Help: "Configured fields by kind and validity.",
	}, []string{"kind", "valid"})

	// Bindings counts bound transforms by stage and transform name.
	Bindings = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fieldcfg_transform_bindings",
		Help: "Bound field transforms by stage and transform.",
	}, []string{"stage", "transform"})

	// FatalErrors counts fatal configuration errors seen before abort.
	FatalErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fieldcfg_fatal_errors_total",
		Help: "Fatal field configuration errors.",
	})

	// Reports counts published reports by sink and outcome.
	Reports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldcfg_reports_total",
		Help: "Validation reports pushed to sinks.",
	}, []string{"sink", "result"})
)

// RecordFields replaces the field and binding gauges with the state of cfgs.
func RecordFields(cfgs []*field.Config) {
	Fields.Reset()
	Bindings.Reset()
	for _, c := range cfgs {
		Fields.WithLabelValues(c.Kind().String(), fmt.Sprint(c.IsValid())).Inc()
		for _, s := range field.Stages {
			if b := c.Transform(s); b.Bound() {
				Bindings.WithLabelValues(s.String(), b.Name).Inc()
			}
		}
	}
}

// Expose serves /metrics on port in the background. The returned server can
// be shut down by the caller.
func Expose(port int) (*http.Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return Serve(lis), nil
}

// Serve serves /metrics on lis in the background.
func Serve(lis net.Listener) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().Error("metrics: serve failed", "addr", lis.Addr().String(), "err", err)
		}
	}()
	return srv
}
