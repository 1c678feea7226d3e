package tms

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"casetree/internal/pagination"
	"casetree/pkg/logging"

	"gopkg.in/yaml.v3"
)

// FileSource serves the Source contract from a project dump on disk. It
// exists so reports and tests can run against exported data without the
// remote service; it paginates the in-memory collections with the same
// token contract a live source uses.
type FileSource struct {
	project   string
	suites    []RawSuite
	testCases []RawTestCase
}

type dumpFile struct {
	Project   string        `json:"project,omitempty" yaml:"project,omitempty"`
	Suites    []RawSuite    `json:"suites" yaml:"suites"`
	TestCases []RawTestCase `json:"testCases" yaml:"testCases"`
}

// NewFileSource loads a project dump from path. YAML is assumed unless the
// file extension is .json.
func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dump file: %w", err)
	}

	var dump dumpFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &dump)
	} else {
		err = yaml.Unmarshal(data, &dump)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing dump file %s: %w", path, err)
	}

	logging.Debug("Config", "Loaded dump %s: project=%q suites=%d testCases=%d",
		path, dump.Project, len(dump.Suites), len(dump.TestCases))

	return &FileSource{
		project:   dump.Project,
		suites:    dump.Suites,
		testCases: dump.TestCases,
	}, nil
}

// Project returns the project key declared in the dump, if any.
func (f *FileSource) Project() string {
	return f.project
}

// FetchSuitePage implements SuiteSource over the loaded dump.
func (f *FileSource) FetchSuitePage(ctx context.Context, projectKey, pageToken string, pageSize int) (pagination.Page[RawSuite], error) {
	if err := f.checkProject(projectKey); err != nil {
		return pagination.Page[RawSuite]{}, err
	}
	return slicePage(f.suites, pageToken, pageSize)
}

// FetchTestCasePage implements TestCaseSource over the loaded dump. filter
// is ignored: file dumps carry no query engine, so callers always get the
// whole collection.
func (f *FileSource) FetchTestCasePage(ctx context.Context, projectKey, filter, pageToken string, pageSize int) (pagination.Page[RawTestCase], error) {
	if err := f.checkProject(projectKey); err != nil {
		return pagination.Page[RawTestCase]{}, err
	}
	return slicePage(f.testCases, pageToken, pageSize)
}

func (f *FileSource) checkProject(projectKey string) error {
	if f.project != "" && projectKey != "" && f.project != projectKey {
		return &ProjectNotFoundError{ProjectKey: projectKey}
	}
	return nil
}

// slicePage cuts one page out of a full in-memory collection. The token is
// the decimal offset of the next unread item.
func slicePage[T any](all []T, pageToken string, pageSize int) (pagination.Page[T], error) {
	offset := 0
	if pageToken != "" {
		parsed, err := strconv.Atoi(pageToken)
		if err != nil || parsed < 0 {
			return pagination.Page[T]{}, fmt.Errorf("invalid page token %q", pageToken)
		}
		offset = parsed
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if offset >= len(all) {
		return pagination.Page[T]{}, nil
	}

	end := offset + pageSize
	next := ""
	if end >= len(all) {
		end = len(all)
	} else {
		next = strconv.Itoa(end)
	}

	return pagination.Page[T]{
		Items:         all[offset:end],
		NextPageToken: next,
	}, nil
}
