package formatting

import (
	"casetree/internal/hierarchy"
	"casetree/internal/tms"
)

// jsonFormatter provides machine-readable JSON output.
type jsonFormatter struct {
	options Options
}

func (f *jsonFormatter) FormatSuiteTree(roots []*hierarchy.Node) string {
	return PrettyJSON(toNodeViews(roots)) + "\n"
}

func (f *jsonFormatter) FormatTestCases(cases []tms.TestCase) string {
	return PrettyJSON(toCaseViews(cases)) + "\n"
}

func (f *jsonFormatter) FormatPath(entries []tms.PathEntry, sep string) string {
	return PrettyJSON(entries) + "\n"
}
