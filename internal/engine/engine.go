package engine

import (
	"context"
	"net/http"

	"fieldcfg/internal/catalog"
	"fieldcfg/internal/report"
	"fieldcfg/internal/transport"
)

type Engine struct {
	transport *transport.Server
	metrics   *http.Server
	catalog   *catalog.Catalog
	report    *report.Report
}

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }
func (e *Engine) Report() *report.Report    { return e.report }

// Run serves health checks until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		e.transport.Stop()
		if e.metrics != nil {
			_ = e.metrics.Shutdown(context.Background())
		}
	}()

	return e.transport.Serve()
}
