package formatting

import (
	"fmt"

	"casetree/internal/hierarchy"
	"casetree/internal/tms"

	"gopkg.in/yaml.v3"
)

// yamlFormatter provides machine-readable YAML output.
type yamlFormatter struct {
	options Options
}

func (f *yamlFormatter) FormatSuiteTree(roots []*hierarchy.Node) string {
	return marshalYAML(toNodeViews(roots))
}

func (f *yamlFormatter) FormatTestCases(cases []tms.TestCase) string {
	return marshalYAML(toCaseViews(cases))
}

func (f *yamlFormatter) FormatPath(entries []tms.PathEntry, sep string) string {
	views := make([]map[string]interface{}, len(entries))
	for i, e := range entries {
		views[i] = map[string]interface{}{"id": e.ID, "name": e.Name}
	}
	return marshalYAML(views)
}

func marshalYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v\n", v)
	}
	return string(b)
}
