package tms

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dumpYAML = `project: DEMO
suites:
  - id: 1
    title: Web
  - id: 2
    title: Login
    parentSuiteId: 1
  - id: 3
    title: SSO
    parentSuiteId: 2
testCases:
  - id: 10
    key: DEMO-10
    testSuite:
      id: 2
  - id: 11
    key: DEMO-11
    testSuite:
      id: 3
`

const dumpJSON = `{
  "project": "DEMO",
  "suites": [
    {"id": 1, "title": "Web"},
    {"id": 2, "title": "Login", "parentSuiteId": 1}
  ],
  "testCases": [
    {"id": 10, "key": "DEMO-10", "testSuite": {"id": 2}}
  ]
}`

func writeDump(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewFileSource_YAML(t *testing.T) {
	src, err := NewFileSource(writeDump(t, "dump.yaml", dumpYAML))
	require.NoError(t, err)
	assert.Equal(t, "DEMO", src.Project())

	page, err := src.FetchSuitePage(context.Background(), "DEMO", "", 100)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Web", page.Items[0].Title)
	require.NotNil(t, page.Items[1].ParentSuiteID)
	assert.Equal(t, int64(1), *page.Items[1].ParentSuiteID)
	assert.Empty(t, page.NextPageToken)
}

func TestNewFileSource_JSON(t *testing.T) {
	src, err := NewFileSource(writeDump(t, "dump.json", dumpJSON))
	require.NoError(t, err)

	page, err := src.FetchTestCasePage(context.Background(), "DEMO", "", "", 100)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "DEMO-10", page.Items[0].Key)
	require.NotNil(t, page.Items[0].TestSuite)
	assert.Equal(t, int64(2), page.Items[0].TestSuite.ID)
}

func TestNewFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestNewFileSource_Malformed(t *testing.T) {
	_, err := NewFileSource(writeDump(t, "bad.yaml", "suites: [unclosed"))
	require.Error(t, err)
}

func TestFileSource_PaginationContract(t *testing.T) {
	src, err := NewFileSource(writeDump(t, "dump.yaml", dumpYAML))
	require.NoError(t, err)

	var all []RawSuite
	token := ""
	pages := 0
	for {
		page, err := src.FetchSuitePage(context.Background(), "DEMO", token, 2)
		require.NoError(t, err)
		pages++
		all = append(all, page.Items...)
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}

	assert.Equal(t, 2, pages)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestFileSource_ProjectMismatch(t *testing.T) {
	src, err := NewFileSource(writeDump(t, "dump.yaml", dumpYAML))
	require.NoError(t, err)

	_, err = src.FetchSuitePage(context.Background(), "OTHER", "", 100)
	require.Error(t, err)
	assert.True(t, IsProjectNotFound(err))
}

func TestFileSource_InvalidToken(t *testing.T) {
	src, err := NewFileSource(writeDump(t, "dump.yaml", dumpYAML))
	require.NoError(t, err)

	_, err = src.FetchSuitePage(context.Background(), "DEMO", "not-a-number", 100)
	require.Error(t, err)
}

func TestFileSource_OffsetPastEnd(t *testing.T) {
	src, err := NewFileSource(writeDump(t, "dump.yaml", dumpYAML))
	require.NoError(t, err)

	page, err := src.FetchSuitePage(context.Background(), "DEMO", "99", 100)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextPageToken)
}
