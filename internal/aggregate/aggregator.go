package aggregate

import (
	"context"

	"casetree/internal/hierarchy"
	"casetree/internal/pagination"
	"casetree/internal/snapshot"
	"casetree/internal/tms"
	"casetree/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// DefaultEnrichConcurrency bounds the worker pool used for bulk test case
// enrichment. Modest width keeps bulk operations from overwhelming the
// source when enrichment triggers snapshot fetches for multiple projects.
const DefaultEnrichConcurrency = 8

// Aggregator answers suite-scoped test case queries by combining the
// paginated test case collection with the cached suite snapshot.
type Aggregator struct {
	cache       *snapshot.Cache
	cases       tms.TestCaseSource
	pageSize    int
	concurrency int
	separator   string
}

// Option configures the aggregator.
type Option func(*Aggregator)

// WithPageSize overrides the test case page size.
func WithPageSize(size int) Option {
	return func(a *Aggregator) {
		a.pageSize = size
	}
}

// WithEnrichConcurrency overrides the bulk enrichment pool width.
func WithEnrichConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithSeparator overrides the path separator used in rendered paths.
func WithSeparator(sep string) Option {
	return func(a *Aggregator) {
		a.separator = sep
	}
}

// New creates an aggregator over a snapshot cache and a test case source.
func New(cache *snapshot.Cache, cases tms.TestCaseSource, opts ...Option) *Aggregator {
	a := &Aggregator{
		cache:       cache,
		cases:       cases,
		pageSize:    tms.DefaultPageSize,
		concurrency: DefaultEnrichConcurrency,
		separator:   hierarchy.DefaultSeparator,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// suiteSet fetches the project snapshot and indexes it for queries.
func (a *Aggregator) suiteSet(ctx context.Context, projectKey string) (*hierarchy.Set, error) {
	suites, err := a.cache.Get(ctx, projectKey)
	if err != nil {
		return nil, err
	}
	return hierarchy.NewSet(suites), nil
}

// collectTestCases pulls the full (optionally server-filtered) test case
// collection for a project.
func (a *Aggregator) collectTestCases(ctx context.Context, projectKey, filter string) ([]tms.TestCase, error) {
	raw, err := pagination.Collect(ctx, func(ctx context.Context, pageToken string) (pagination.Page[tms.RawTestCase], error) {
		return a.cases.FetchTestCasePage(ctx, projectKey, filter, pageToken, a.pageSize)
	}, pagination.Options{})
	if err != nil {
		return nil, &tms.SourceError{Op: "testcases", ProjectKey: projectKey, Err: err}
	}

	out := make([]tms.TestCase, len(raw))
	for i, r := range raw {
		out[i] = r.TestCase()
	}
	return out, nil
}

// AllTestCasesUnderSuite returns every test case whose immediate suite is
// suiteID, or, when byRoot is true, every test case anywhere under the
// root suite suiteID. Test cases whose suite is absent from the snapshot
// cannot be attributed to any root; they are excluded from root matching
// and counted as orphaned, never treated as an error.
func (a *Aggregator) AllTestCasesUnderSuite(ctx context.Context, projectKey string, suiteID int64, byRoot bool) ([]tms.TestCase, error) {
	set, err := a.suiteSet(ctx, projectKey)
	if err != nil {
		return nil, err
	}

	cases, err := a.collectTestCases(ctx, projectKey, "")
	if err != nil {
		return nil, err
	}

	var matched []tms.TestCase
	orphaned := 0
	for _, tc := range cases {
		if tc.SuiteID == nil {
			orphaned++
			continue
		}
		if !byRoot {
			if *tc.SuiteID == suiteID {
				matched = append(matched, tc)
			}
			continue
		}
		rootID, ok := set.RootIDOf(*tc.SuiteID)
		if !ok {
			orphaned++
			continue
		}
		if rootID == suiteID {
			matched = append(matched, tc)
		}
	}

	if orphaned > 0 {
		logging.Warn("Aggregator", "Skipped %d orphaned test cases in project %s (suite not in snapshot)", orphaned, projectKey)
	}
	logging.Debug("Aggregator", "Matched %d/%d test cases under suite %d in project %s (byRoot=%t)",
		len(matched), len(cases), suiteID, projectKey, byRoot)

	return matched, nil
}

// EnrichTestCases annotates each test case with its feature (immediate)
// suite id and resolved root suite id. Orphaned test cases keep a nil
// RootSuiteID and are logged at warning level. The work runs on a bounded
// worker pool rather than unbounded fan-out.
func (a *Aggregator) EnrichTestCases(ctx context.Context, projectKey string, cases []tms.TestCase) ([]tms.TestCase, error) {
	set, err := a.suiteSet(ctx, projectKey)
	if err != nil {
		return nil, err
	}

	out := make([]tms.TestCase, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, tc := range cases {
		i, tc := i, tc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = enrichOne(set, tc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	orphaned := 0
	for _, tc := range out {
		if tc.Orphaned() {
			orphaned++
		}
	}
	if orphaned > 0 {
		logging.Warn("Aggregator", "%d of %d test cases in project %s are orphaned", orphaned, len(out), projectKey)
	}

	return out, nil
}

func enrichOne(set *hierarchy.Set, tc tms.TestCase) tms.TestCase {
	enriched := tc
	enriched.FeatureSuiteID = nil
	enriched.RootSuiteID = nil
	if tc.SuiteID == nil {
		return enriched
	}

	featureID := *tc.SuiteID
	enriched.FeatureSuiteID = &featureID
	if rootID, ok := set.RootIDOf(featureID); ok {
		enriched.RootSuiteID = &rootID
	}
	return enriched
}

// SuitePath renders the root-to-target path of a suite as a single
// string, using the configured separator. Unknown ids render via the
// resolver's fallback rather than failing.
func (a *Aggregator) SuitePath(ctx context.Context, projectKey string, suiteID int64) (string, error) {
	set, err := a.suiteSet(ctx, projectKey)
	if err != nil {
		return "", err
	}
	return set.PathOf(suiteID, a.separator), nil
}

// SuiteHierarchyPath returns the root-to-target path for a suite as
// {id, name} entries, using the cached snapshot. An unknown suite id
// yields a single fallback entry so callers can always render something.
func (a *Aggregator) SuiteHierarchyPath(ctx context.Context, projectKey string, suiteID int64) ([]tms.PathEntry, error) {
	set, err := a.suiteSet(ctx, projectKey)
	if err != nil {
		return nil, err
	}
	return set.PathEntries(suiteID), nil
}

// PrefetchProjects warms the snapshot cache for several projects at once,
// bounding the number of concurrent fetches. The first failure cancels
// the rest and is returned.
func (a *Aggregator) PrefetchProjects(ctx context.Context, projectKeys []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for _, key := range projectKeys {
		key := key
		g.Go(func() error {
			_, err := a.cache.Get(ctx, key)
			return err
		})
	}
	return g.Wait()
}
