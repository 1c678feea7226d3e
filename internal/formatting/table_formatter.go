package formatting

import (
	"fmt"
	"strings"

	"casetree/internal/hierarchy"
	"casetree/internal/tms"
	casestrings "casetree/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
)

// tableFormatter provides rich output via go-pretty.
type tableFormatter struct {
	options Options
}

func (f *tableFormatter) FormatSuiteTree(roots []*hierarchy.Node) string {
	if len(roots) == 0 {
		return "No suites found\n"
	}

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	for _, r := range roots {
		appendNode(l, r)
	}
	return l.Render() + "\n"
}

func appendNode(l list.Writer, n *hierarchy.Node) {
	title := casestrings.TruncateTitle(n.Suite.DisplayTitle(), casestrings.DefaultTitleMaxLen)
	label := fmt.Sprintf("%s [%d]", title, n.Suite.ID)
	if n.Orphaned {
		label += " (orphaned)"
	}
	l.AppendItem(label)
	if len(n.Children) > 0 {
		l.Indent()
		for _, c := range n.Children {
			appendNode(l, c)
		}
		l.UnIndent()
	}
}

func (f *tableFormatter) FormatTestCases(cases []tms.TestCase) string {
	if len(cases) == 0 {
		return "No test cases found\n"
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Key", "Suite", "Root Suite"})
	for _, tc := range cases {
		t.AppendRow(table.Row{tc.ID, tc.Key, idOrDash(tc.SuiteID), idOrDash(tc.RootSuiteID)})
	}
	return t.Render() + "\n"
}

func (f *tableFormatter) FormatPath(entries []tms.PathEntry, sep string) string {
	if sep == "" {
		sep = hierarchy.DefaultSeparator
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s [%d]", e.Name, e.ID)
	}
	return strings.Join(parts, sep) + "\n"
}

func idOrDash(id *int64) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *id)
}
