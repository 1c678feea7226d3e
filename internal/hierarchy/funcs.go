package hierarchy

import "casetree/internal/tms"

// The package-level functions are one-shot conveniences over NewSet for
// callers holding a bare suite slice. Code issuing many queries against
// the same snapshot should build a Set once and reuse it.

// BuildTree partitions suites into a forest.
func BuildTree(suites []tms.Suite) []*Node {
	return NewSet(suites).BuildTree()
}

// RootIDs returns the ids of suites with no parent or a dangling parent.
func RootIDs(suites []tms.Suite) map[int64]struct{} {
	return NewSet(suites).RootIDs()
}

// LevelOf returns the depth of a suite, 0 for roots.
func LevelOf(id int64, suites []tms.Suite) int {
	return NewSet(suites).LevelOf(id)
}

// PathOf renders the root-to-suite title path.
func PathOf(id int64, suites []tms.Suite, sep string) string {
	return NewSet(suites).PathOf(id, sep)
}

// RootIDOf resolves a suite's root id; ok is false when id is unknown.
func RootIDOf(id int64, suites []tms.Suite) (rootID int64, ok bool) {
	return NewSet(suites).RootIDOf(id)
}

// AncestorsOf returns a suite's ancestors nearest-first.
func AncestorsOf(id int64, suites []tms.Suite) []tms.Suite {
	return NewSet(suites).AncestorsOf(id)
}

// DescendantsOf returns the subtree below a suite, excluding it.
func DescendantsOf(id int64, suites []tms.Suite) []tms.Suite {
	return NewSet(suites).DescendantsOf(id)
}

// Enrich annotates every suite with its derived hierarchy fields.
func Enrich(suites []tms.Suite) []tms.Suite {
	return NewSet(suites).Enrich()
}
