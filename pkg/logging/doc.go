// Package logging provides a structured logging system for casetree with
// unified log handling and level filtering.
//
// The package is built on Go's standard slog package and tags every entry
// with a subsystem identifier so that log aggregation can filter by the
// component that produced it.
//
// # Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// # Usage
//
//	import "casetree/pkg/logging"
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("SnapshotCache", "Refreshed snapshot for %s", projectKey)
//	logging.Warn("Aggregator", "Skipping %d orphaned test cases", n)
//	logging.Error("Paginator", err, "Page fetch failed")
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering and categorization:
//
//   - **Paginator**: Cursor pagination runs and truncation events
//   - **SnapshotCache**: Snapshot fetches, cache hits, invalidations
//   - **Hierarchy**: Structural anomalies found while resolving suites
//   - **Aggregator**: Test case aggregation and orphan accounting
//   - **Config**: Configuration loading and validation
//   - **CLI**: Command-line entry points
//
// # Thread Safety
//
// The logging system is safe for concurrent use from multiple goroutines;
// level filtering happens at the handler so filtered-out messages cost no
// allocation.
package logging
