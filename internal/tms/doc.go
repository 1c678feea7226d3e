// Package tms defines the domain model and collaborator contracts for the
// test-management service the engine aggregates from.
//
// The package owns three things:
//
//   - The raw wire shapes (RawSuite, RawTestCase) and their domain
//     counterparts (Suite, TestCase). Derived hierarchy fields on the
//     domain types are computed by the hierarchy resolver and never
//     written back to the source.
//   - The Source interfaces (SuiteSource, TestCaseSource) that transport
//     implementations satisfy. The engine only depends on the token-cursor
//     pagination contract; HTTP, authentication and retries live outside.
//   - FileSource, a dump-backed Source used by the CLI and tests.
package tms
