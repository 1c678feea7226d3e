package config

import "time"

// GetDefaultConfig returns the default configuration for casetree.
func GetDefaultConfig() CasetreeConfig {
	return CasetreeConfig{
		Log: LogConfig{
			Level: "info",
		},
		Snapshot: SnapshotConfig{
			TTL:      Duration(5 * time.Minute),
			PageSize: 100,
		},
		Hierarchy: HierarchyConfig{
			PathSeparator: " > ",
		},
		Aggregator: AggregatorConfig{
			PageSize:          100,
			EnrichConcurrency: 8,
		},
	}
}
