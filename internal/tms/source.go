package tms

import (
	"context"

	"casetree/internal/pagination"
)

// DefaultPageSize is the page size requested from the remote collection
// endpoints when the caller does not override it. Snapshot fetches always
// request the maximum the service accepts.
const DefaultPageSize = 100

// SuiteSource fetches one page of the suite collection for a project.
// Implementations own transport, authentication and retries; the engine
// only sees the token-cursor contract.
type SuiteSource interface {
	FetchSuitePage(ctx context.Context, projectKey, pageToken string, pageSize int) (pagination.Page[RawSuite], error)
}

// TestCaseSource fetches one page of the test case collection for a
// project. filter is an optional server-side query expression, opaque to
// the engine; an empty filter requests the whole collection.
type TestCaseSource interface {
	FetchTestCasePage(ctx context.Context, projectKey, filter, pageToken string, pageSize int) (pagination.Page[RawTestCase], error)
}

// Source is the full collaborator contract the engine is given.
type Source interface {
	SuiteSource
	TestCaseSource
}
