// Package aggregate combines the paginated test case collection with the
// cached suite snapshot to answer "every test case under suite X" and
// "every test case under root R" queries, and to annotate test cases with
// their resolved hierarchy position.
package aggregate
