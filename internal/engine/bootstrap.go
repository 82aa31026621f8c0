package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fieldcfg/internal/catalog"
	"fieldcfg/internal/config"
	"fieldcfg/internal/logging"
	"fieldcfg/internal/report"
	"fieldcfg/internal/telemetry"
	"fieldcfg/internal/transport"
	"fieldcfg/sink"
	_ "fieldcfg/sink/kafka"
	"fieldcfg/sink/stdout"
)

// Validate compiles the fields file, records metrics and pushes a report to
// every configured sink. stdout sinks write to out. An unknown transform name
// in the fields file panics with a *field.FatalError.
func Validate(cfg config.App, out io.Writer) (*catalog.Catalog, *report.Report, error) {
	if cfg.FieldsFile == "" {
		return nil, nil, errors.New("engine: no fields_file configured")
	}
	cat, err := catalog.Compile(cfg.FieldsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: %w", err)
	}
	fields := cat.Fields()
	telemetry.RecordFields(fields)

	r := report.New(fields, cat.Grids())
	if err := publish(r, cfg.Report, out); err != nil {
		return cat, r, err
	}
	if !r.Valid() {
		logging.L().Warn("invalid field configurations", "fields", r.Invalid())
	}
	return cat, r, nil
}

func Bootstrap(ctx context.Context, cfg config.App, out io.Writer) (*Engine, error) {
	// 1. fields + report
	cat, r, err := Validate(cfg, out)
	if err != nil {
		return nil, err
	}

	// 2. transport server
	srv, err := transport.StartServer(cfg.GRPCPort)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	srv.Publish(cat.Fields())

	// 3. metrics
	metrics, err := telemetry.Expose(cfg.MetricsPort)
	if err != nil {
		srv.Stop()
		return nil, err
	}

	logging.L().Info("fieldcfg ready",
		"fields", len(r.Fields), "valid", r.Valid(), "grpc", srv.Addr().String(), "report", r.ID.String())
	return &Engine{
		transport: srv,
		metrics:   metrics,
		catalog:   cat,
		report:    r,
	}, nil
}

func publish(r *report.Report, rc config.ReportCfg, out io.Writer) error {
	for _, name := range rc.Sinks {
		a, err := sink.NewAdapter(name)
		if err != nil {
			return err
		}

		switch name {
		case "stdout":
			err = a.Configure(stdout.Config{Out: out, Summary: rc.Summary})
		case "kafka":
			err = a.Configure(rc.Kafka)
		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return err
		}

		err = a.Push(r)
		_ = a.Close()
		if err != nil {
			telemetry.Reports.WithLabelValues(name, "error").Inc()
			return err
		}
		telemetry.Reports.WithLabelValues(name, "ok").Inc()
	}
	return nil
}
