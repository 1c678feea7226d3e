package cmd

import (
	"fmt"

	"casetree/internal/aggregate"
	"casetree/internal/config"
	"casetree/internal/formatting"
	"casetree/internal/snapshot"
	"casetree/internal/tms"

	"github.com/spf13/cobra"
)

// engine bundles the wired-up components every report command needs.
type engine struct {
	project   string
	separator string
	cache     *snapshot.Cache
	agg       *aggregate.Aggregator
	formatter formatting.Formatter
}

// buildEngine wires the dump-backed source, snapshot cache, aggregator and
// formatter from the persistent flags and the user configuration.
func buildEngine(cmd *cobra.Command) (*engine, error) {
	if flagInput == "" {
		return nil, fmt.Errorf("--input is required")
	}

	cfg, err := loadConfigFromFlags()
	if err != nil {
		return nil, err
	}

	source, err := tms.NewFileSource(flagInput)
	if err != nil {
		return nil, err
	}

	project := flagProject
	if project == "" {
		project = source.Project()
	}
	if project == "" {
		return nil, fmt.Errorf("no project key: dump declares none and --project not set")
	}

	format := formatting.OutputFormat(flagFormat)
	switch format {
	case formatting.FormatConsole, formatting.FormatTable, formatting.FormatJSON, formatting.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown format %q", flagFormat)
	}

	cache := snapshot.NewCache(source,
		snapshot.WithTTL(cfg.Snapshot.TTL.Std()),
		snapshot.WithPageSize(cfg.Snapshot.PageSize),
	)
	agg := aggregate.New(cache, source,
		aggregate.WithPageSize(cfg.Aggregator.PageSize),
		aggregate.WithEnrichConcurrency(cfg.Aggregator.EnrichConcurrency),
		aggregate.WithSeparator(cfg.Hierarchy.PathSeparator),
	)

	return &engine{
		project:   project,
		separator: cfg.Hierarchy.PathSeparator,
		cache:     cache,
		agg:       agg,
		formatter: formatting.NewFormatter(formatting.Options{Format: format}),
	}, nil
}

// loadConfigFromFlags loads config.yaml from --config, or from the default
// per-user directory when the flag is unset. Defaults apply when neither
// location has a file.
func loadConfigFromFlags() (config.CasetreeConfig, error) {
	path := flagConfig
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return config.GetDefaultConfig(), nil
		}
		path = defaultPath
	}
	return config.LoadConfig(path)
}
