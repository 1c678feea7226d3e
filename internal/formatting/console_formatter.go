package formatting

import (
	"fmt"
	"strings"

	"casetree/internal/hierarchy"
	"casetree/internal/tms"
)

// consoleFormatter provides simple indented text output.
type consoleFormatter struct {
	options Options
}

func (f *consoleFormatter) FormatSuiteTree(roots []*hierarchy.Node) string {
	if len(roots) == 0 {
		return f.emptyMessage("No suites found")
	}
	var b strings.Builder
	for _, r := range roots {
		f.writeNode(&b, r, 0)
	}
	return b.String()
}

func (f *consoleFormatter) writeNode(b *strings.Builder, n *hierarchy.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(fmt.Sprintf("%s [%d]", n.Suite.DisplayTitle(), n.Suite.ID))
	if n.Orphaned {
		b.WriteString(" (orphaned)")
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		f.writeNode(b, c, depth+1)
	}
}

func (f *consoleFormatter) FormatTestCases(cases []tms.TestCase) string {
	if len(cases) == 0 {
		return f.emptyMessage("No test cases found")
	}
	var b strings.Builder
	for _, tc := range cases {
		b.WriteString(fmt.Sprintf("%s [%d]", caseLabel(tc), tc.ID))
		if tc.SuiteID != nil {
			b.WriteString(fmt.Sprintf(" suite=%d", *tc.SuiteID))
		}
		if tc.RootSuiteID != nil {
			b.WriteString(fmt.Sprintf(" root=%d", *tc.RootSuiteID))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (f *consoleFormatter) FormatPath(entries []tms.PathEntry, sep string) string {
	if sep == "" {
		sep = hierarchy.DefaultSeparator
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return strings.Join(names, sep) + "\n"
}

func (f *consoleFormatter) emptyMessage(message string) string {
	if f.options.Quiet {
		return ""
	}
	return message + "\n"
}

func caseLabel(tc tms.TestCase) string {
	if tc.Key != "" {
		return tc.Key
	}
	return fmt.Sprintf("Case %d", tc.ID)
}
