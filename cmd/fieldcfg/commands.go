package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fieldcfg/internal/config"
	"fieldcfg/internal/engine"
	"fieldcfg/internal/field"
	"fieldcfg/internal/logging"
	"fieldcfg/internal/transform"
	"fieldcfg/internal/transport"
)

var errInvalidFields = errors.New("invalid field configurations")

type rootOpts struct {
	configPath string
	fieldsPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	root := &cobra.Command{
		Use:          "fieldcfg",
		Short:        "Validate and serve simulation field configurations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "application config YAML")
	root.PersistentFlags().StringVarP(&opts.fieldsPath, "fields", "f", "", "fields declaration YAML (overrides fields_file)")

	root.AddCommand(
		newCheckCmd(opts),
		newServeCmd(opts),
		newTransformsCmd(),
		newFormatCmd(),
		newStatusCmd(),
	)
	return root
}

func (o *rootOpts) load() (config.App, error) {
	cfg, err := config.LoadApp(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.fieldsPath != "" {
		cfg.FieldsFile = o.fieldsPath
	}
	logging.Configure(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	return cfg, nil
}

func newCheckCmd(opts *rootOpts) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile the fields file and report which fields are valid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			cfg.Report.Summary = !asJSON
			_, r, err := engine.Validate(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !r.Valid() {
				return fmt.Errorf("%w: %s", errInvalidFields, strings.Join(r.Invalid(), ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the encoded report instead of a summary")
	return cmd
}

func newServeCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Validate fields, then serve their health over gRPC and metrics over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e, err := engine.Bootstrap(ctx, cfg, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			return e.Run(ctx)
		},
	}
}

func newTransformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transforms",
		Short: "List the available transform functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return transform.NewRegistry().Fprint(cmd.OutOrStdout())
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format FILE...",
		Short: "Show the export format inferred from output file names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a, field.InferExportFormat(a))
			}
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "status [FIELD]",
		Short: "Query a running server for the health of one field or all fields",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			cc, hc, err := transport.Dial(addr)
			if err != nil {
				return err
			}
			defer cc.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			st, err := transport.Check(ctx, hc, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:7070", "gRPC address of a running fieldcfg serve")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	return cmd
}
