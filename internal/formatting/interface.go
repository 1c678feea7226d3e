// Package formatting provides unified output formatting for casetree's
// report surfaces, with support for multiple output formats (console,
// JSON, YAML, table).
package formatting

import (
	"casetree/internal/hierarchy"
	"casetree/internal/tms"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
}

// Formatter renders resolved suite data for human or machine consumption.
type Formatter interface {
	// FormatSuiteTree renders the resolved forest. Orphaned roots are
	// marked so dangling references can be told from true roots.
	FormatSuiteTree(roots []*hierarchy.Node) string

	// FormatTestCases renders a test case list, including resolved
	// hierarchy columns when enrichment has filled them in.
	FormatTestCases(cases []tms.TestCase) string

	// FormatPath renders a root-to-suite hierarchy path.
	FormatPath(entries []tms.PathEntry, sep string) string
}

// NewFormatter creates the appropriate formatter based on options.
func NewFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return &jsonFormatter{options: options}
	case FormatYAML:
		return &yamlFormatter{options: options}
	case FormatTable:
		return &tableFormatter{options: options}
	case FormatConsole:
		fallthrough
	default:
		return &consoleFormatter{options: options}
	}
}

// nodeView is the serializable shape of one tree node for the JSON and
// YAML formatters.
type nodeView struct {
	ID       int64      `json:"id" yaml:"id"`
	Title    string     `json:"title" yaml:"title"`
	Orphaned bool       `json:"orphaned,omitempty" yaml:"orphaned,omitempty"`
	Children []nodeView `json:"children,omitempty" yaml:"children,omitempty"`
}

func toNodeViews(roots []*hierarchy.Node) []nodeView {
	views := make([]nodeView, 0, len(roots))
	for _, n := range roots {
		views = append(views, nodeView{
			ID:       n.Suite.ID,
			Title:    n.Suite.DisplayTitle(),
			Orphaned: n.Orphaned,
			Children: toNodeViews(n.Children),
		})
	}
	return views
}

// caseView is the serializable shape of one test case for the JSON and
// YAML formatters.
type caseView struct {
	ID          int64  `json:"id" yaml:"id"`
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
	SuiteID     *int64 `json:"suiteId,omitempty" yaml:"suiteId,omitempty"`
	RootSuiteID *int64 `json:"rootSuiteId,omitempty" yaml:"rootSuiteId,omitempty"`
}

func toCaseViews(cases []tms.TestCase) []caseView {
	views := make([]caseView, 0, len(cases))
	for _, tc := range cases {
		views = append(views, caseView{
			ID:          tc.ID,
			Key:         tc.Key,
			SuiteID:     tc.SuiteID,
			RootSuiteID: tc.RootSuiteID,
		})
	}
	return views
}
