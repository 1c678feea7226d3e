package tms

import "fmt"

// RawSuite is the wire shape of one suite record as returned by the remote
// suite collection endpoint. Either Title or Name may carry the display
// name; some service versions populate one, some the other.
type RawSuite struct {
	ID            int64  `json:"id" yaml:"id"`
	Title         string `json:"title,omitempty" yaml:"title,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	ParentSuiteID *int64 `json:"parentSuiteId,omitempty" yaml:"parentSuiteId,omitempty"`
}

// Suite converts the raw record into the domain representation.
func (r RawSuite) Suite() Suite {
	title := r.Title
	if title == "" {
		title = r.Name
	}
	return Suite{
		ID:            r.ID,
		Title:         title,
		ParentSuiteID: r.ParentSuiteID,
	}
}

// Suite represents one node in a project's test-organization tree.
//
// The derived fields (Level, RootSuiteID, RootSuiteName, ParentSuiteName,
// Path) are a pure function of the full suite set at computation time. They
// are filled in by the hierarchy resolver and never persisted back to the
// remote source. Suites are read-only, whole-snapshot entities: they are
// only ever replaced in bulk, never mutated field-by-field.
type Suite struct {
	ID            int64
	Title         string
	ParentSuiteID *int64

	// Derived by hierarchy.Enrich; zero-valued otherwise.
	Level           *int
	RootSuiteID     *int64
	RootSuiteName   string
	ParentSuiteName string
	Path            string
}

// DisplayTitle returns the suite title, falling back to "Suite <id>" when
// the source record carried no name.
func (s Suite) DisplayTitle() string {
	if s.Title == "" {
		return fmt.Sprintf("Suite %d", s.ID)
	}
	return s.Title
}

// SuiteRef is a reference to a suite by id, as embedded in test case
// records.
type SuiteRef struct {
	ID int64 `json:"id" yaml:"id"`
}

// RawTestCase is the wire shape of one test case summary record.
type RawTestCase struct {
	ID        int64     `json:"id" yaml:"id"`
	Key       string    `json:"key,omitempty" yaml:"key,omitempty"`
	TestSuite *SuiteRef `json:"testSuite,omitempty" yaml:"testSuite,omitempty"`
}

// TestCase converts the raw record into the domain representation.
func (r RawTestCase) TestCase() TestCase {
	tc := TestCase{
		ID:  r.ID,
		Key: r.Key,
	}
	if r.TestSuite != nil {
		id := r.TestSuite.ID
		tc.SuiteID = &id
	}
	return tc
}

// TestCase is the summary view of one test case.
//
// FeatureSuiteID and RootSuiteID are derived during hierarchy enrichment:
// FeatureSuiteID is the immediate suite id, RootSuiteID the resolved root.
// A test case whose referenced suite is absent from the current snapshot is
// orphaned: enrichment leaves RootSuiteID nil rather than failing.
type TestCase struct {
	ID      int64
	Key     string
	SuiteID *int64

	FeatureSuiteID *int64
	RootSuiteID    *int64
}

// Orphaned reports whether the test case carries no resolvable suite
// reference after enrichment.
func (tc TestCase) Orphaned() bool {
	return tc.SuiteID == nil || tc.RootSuiteID == nil
}

// PathEntry is one step of a root-to-target hierarchy path.
type PathEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
