package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can use "5m", "90s" etc.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// CasetreeConfig is the top-level configuration structure for casetree.
type CasetreeConfig struct {
	Log        LogConfig        `yaml:"log,omitempty"`
	Snapshot   SnapshotConfig   `yaml:"snapshot,omitempty"`
	Hierarchy  HierarchyConfig  `yaml:"hierarchy,omitempty"`
	Aggregator AggregatorConfig `yaml:"aggregator,omitempty"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error (default: info)
}

// SnapshotConfig tunes the suite snapshot cache.
type SnapshotConfig struct {
	TTL      Duration `yaml:"ttl,omitempty"`      // Snapshot time-to-live (default: 5m)
	PageSize int      `yaml:"pageSize,omitempty"` // Page size for suite fetches (default: 100)
}

// HierarchyConfig tunes hierarchy rendering.
type HierarchyConfig struct {
	PathSeparator string `yaml:"pathSeparator,omitempty"` // Separator for rendered paths (default: " > ")
}

// AggregatorConfig tunes test case aggregation.
type AggregatorConfig struct {
	PageSize          int `yaml:"pageSize,omitempty"`          // Page size for test case fetches (default: 100)
	EnrichConcurrency int `yaml:"enrichConcurrency,omitempty"` // Bulk enrichment pool width (default: 8)
}
