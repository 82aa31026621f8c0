package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	kafkasink "fieldcfg/sink/kafka"
)

const EnvPrefix = "FIELDCFG__"

type LogCfg struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

type ReportCfg struct {
	Sinks []string `koanf:"sinks"` // stdout|kafka
	// Summary makes the stdout sink print one line per field.
	Summary bool             `koanf:"summary"`
	Kafka   kafkasink.Config `koanf:"kafka"`
}

type App struct {
	FieldsFile  string    `koanf:"fields_file"`
	GRPCPort    int       `koanf:"grpc_port"`
	MetricsPort int       `koanf:"metrics_port"`
	Log         LogCfg    `koanf:"log"`
	Report      ReportCfg `koanf:"report"`
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// LoadApp merges YAML (if present) with env-vars
// (prefix `FIELDCFG__`, delimiter `__`, e.g. FIELDCFG__LOG__LEVEL=debug).
func LoadApp(path string) (App, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return App{}, err
		}
	}
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return App{}, fmt.Errorf("app schema_version %q not supported (want %s)", sv, SupportedSchema)
	}

	_ = k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)

	var cfg App
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	if cfg.FieldsFile != "" && path != "" && !filepath.IsAbs(cfg.FieldsFile) {
		cfg.FieldsFile = filepath.Join(filepath.Dir(path), cfg.FieldsFile)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// ---------------------------------------------------------------------------
// defaults
// ---------------------------------------------------------------------------

func applyDefaults(c *App) {
	if c.GRPCPort == 0 {
		c.GRPCPort = 7070
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 9100
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if len(c.Report.Sinks) == 0 {
		c.Report.Sinks = []string{"stdout"}
	}
	if c.Report.Kafka.RequiredAcks == 0 {
		c.Report.Kafka.RequiredAcks = 1
	}
	if c.Report.Kafka.Topic == "" {
		c.Report.Kafka.Topic = "fieldcfg.reports"
	}
}
