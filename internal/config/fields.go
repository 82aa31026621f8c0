package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fieldcfg/internal/spec"
)

const SupportedSchema = "v1"

// LoadFieldsFile parses a fields YAML, validates schema_version, and merges
// in the grids from grids_file when one is referenced. Relative grids_file
// paths are resolved against the directory of path.
func LoadFieldsFile(path string) (spec.File, error) {
	var cfg spec.File
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SupportedSchema
	}
	if cfg.SchemaVersion != SupportedSchema {
		return cfg, fmt.Errorf("fields schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	if cfg.GridsFile != "" {
		gridsPath := cfg.GridsFile
		if !filepath.IsAbs(gridsPath) {
			gridsPath = filepath.Join(filepath.Dir(path), gridsPath)
		}
		grids, err := LoadGrids(gridsPath)
		if err != nil {
			return cfg, err
		}
		cfg.Grids = append(cfg.Grids, grids...)
	}
	return cfg, nil
}

// LoadGrids parses a YAML document holding a top-level list of grids.
func LoadGrids(path string) ([]spec.GridSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var grids []spec.GridSpec
	if err := yaml.Unmarshal(raw, &grids); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grids, nil
}
