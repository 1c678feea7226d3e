package hierarchy

import (
	"fmt"

	"casetree/internal/tms"
)

// DefaultSeparator joins ancestor titles in rendered suite paths.
const DefaultSeparator = " > "

// Set is an indexed view over one suite snapshot. All queries are pure and
// cycle-safe: every traversal carries a visited set and returns its
// best-effort partial result when a suite id repeats instead of looping.
//
// A Set never mutates the suites it was built from.
type Set struct {
	suites []tms.Suite
	byID   map[int64]tms.Suite
}

// NewSet indexes a suite snapshot for hierarchy queries. If the input
// carries duplicate ids, the first occurrence wins.
func NewSet(suites []tms.Suite) *Set {
	byID := make(map[int64]tms.Suite, len(suites))
	for _, s := range suites {
		if _, ok := byID[s.ID]; !ok {
			byID[s.ID] = s
		}
	}
	return &Set{suites: suites, byID: byID}
}

// Contains reports whether the set holds a suite with the given id.
func (set *Set) Contains(id int64) bool {
	_, ok := set.byID[id]
	return ok
}

// Get returns the suite with the given id.
func (set *Set) Get(id int64) (tms.Suite, bool) {
	s, ok := set.byID[id]
	return s, ok
}

// chainToRoot is the one traversal primitive every upward query is built
// on. It walks parent pointers starting at id and returns the visited
// suites self-first, root-last. The walk stops at an explicit root (nil
// parent), a dangling parent id, or a revisited id (cycle); in all three
// cases the last chain element is treated as the root.
//
// An id absent from the set yields an empty chain.
func (set *Set) chainToRoot(id int64) []tms.Suite {
	var chain []tms.Suite
	visited := make(map[int64]struct{})
	cur := id
	for {
		s, ok := set.byID[cur]
		if !ok {
			break
		}
		if _, seen := visited[cur]; seen {
			break
		}
		visited[cur] = struct{}{}
		chain = append(chain, s)
		if s.ParentSuiteID == nil {
			break
		}
		cur = *s.ParentSuiteID
	}
	return chain
}

// IsRoot reports whether the suite has no resolvable parent: an explicit
// nil parent, or a parent id absent from the set. A dangling parent
// reference is treated as "no parent", so an orphan suite becomes its own
// root.
func (set *Set) IsRoot(id int64) bool {
	s, ok := set.byID[id]
	if !ok {
		return false
	}
	if s.ParentSuiteID == nil {
		return true
	}
	return !set.Contains(*s.ParentSuiteID)
}

// RootIDs returns the ids of every suite with no parent or a non-resident
// parent id.
func (set *Set) RootIDs() map[int64]struct{} {
	roots := make(map[int64]struct{})
	for _, s := range set.suites {
		if set.IsRoot(s.ID) {
			roots[s.ID] = struct{}{}
		}
	}
	return roots
}

// LevelOf returns the depth of a suite: 0 for a root, otherwise one more
// than its parent's level. A cycle is treated as a root at the point of
// detection; an unknown id reports level 0.
func (set *Set) LevelOf(id int64) int {
	chain := set.chainToRoot(id)
	if len(chain) == 0 {
		return 0
	}
	return len(chain) - 1
}

// RootIDOf resolves the root suite id for a suite. The second return is
// false only when id is absent from the set entirely; a suite that is its
// own root returns itself with true. The false case is the orphan signal
// the aggregator relies on.
func (set *Set) RootIDOf(id int64) (int64, bool) {
	chain := set.chainToRoot(id)
	if len(chain) == 0 {
		return 0, false
	}
	return chain[len(chain)-1].ID, true
}

// PathOf renders the ancestor titles from the root down to and including
// id, joined by sep (DefaultSeparator when sep is empty). An unknown id
// renders as "Unknown Suite (<id>)"; suites without a title render as
// "Suite <id>".
func (set *Set) PathOf(id int64, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	chain := set.chainToRoot(id)
	if len(chain) == 0 {
		return fmt.Sprintf("Unknown Suite (%d)", id)
	}
	out := ""
	for i := len(chain) - 1; i >= 0; i-- {
		if out != "" {
			out += sep
		}
		out += chain[i].DisplayTitle()
	}
	return out
}

// PathEntries returns the root-to-target path as {id, name} pairs. An
// unknown id yields a single fallback entry so callers can always render
// something.
func (set *Set) PathEntries(id int64) []tms.PathEntry {
	chain := set.chainToRoot(id)
	if len(chain) == 0 {
		return []tms.PathEntry{{ID: id, Name: fmt.Sprintf("Suite %d", id)}}
	}
	entries := make([]tms.PathEntry, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		entries = append(entries, tms.PathEntry{ID: chain[i].ID, Name: chain[i].DisplayTitle()})
	}
	return entries
}

// AncestorsOf returns the suite's ancestors nearest-first, excluding the
// suite itself. A root has no ancestors; cycles truncate the walk.
func (set *Set) AncestorsOf(id int64) []tms.Suite {
	chain := set.chainToRoot(id)
	if len(chain) <= 1 {
		return nil
	}
	return chain[1:]
}

// DescendantsOf returns every suite in the subtree below id, in
// breadth-first snapshot order, excluding id itself. Cycles are guarded by
// a visited set.
func (set *Set) DescendantsOf(id int64) []tms.Suite {
	if !set.Contains(id) {
		return nil
	}

	children := set.childIndex()
	var out []tms.Suite
	visited := map[int64]struct{}{id: {}}
	queue := []int64{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range children[cur] {
			if _, seen := visited[child.ID]; seen {
				continue
			}
			visited[child.ID] = struct{}{}
			out = append(out, child)
			queue = append(queue, child.ID)
		}
	}
	return out
}

// childIndex maps each suite id to its direct children in snapshot order.
// Duplicate-id suites beyond the first are skipped, matching NewSet.
func (set *Set) childIndex() map[int64][]tms.Suite {
	children := make(map[int64][]tms.Suite)
	seen := make(map[int64]struct{}, len(set.suites))
	for _, s := range set.suites {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		if s.ParentSuiteID != nil && set.Contains(*s.ParentSuiteID) {
			children[*s.ParentSuiteID] = append(children[*s.ParentSuiteID], set.byID[s.ID])
		}
	}
	return children
}

// Enrich returns a copy of the snapshot where every suite carries its
// computed Level, RootSuiteID, RootSuiteName, ParentSuiteName and Path.
// Original fields are preserved unchanged; the input slice is not touched.
func (set *Set) Enrich() []tms.Suite {
	out := make([]tms.Suite, len(set.suites))
	for i, s := range set.suites {
		// For duplicate ids the chain describes the first (indexed)
		// occurrence, consistent with every other query on the set.
		chain := set.chainToRoot(s.ID)
		enriched := s
		level := len(chain) - 1
		root := chain[len(chain)-1]
		enriched.Level = &level
		rootID := root.ID
		enriched.RootSuiteID = &rootID
		enriched.RootSuiteName = root.DisplayTitle()
		enriched.Path = set.PathOf(s.ID, "")
		if s.ParentSuiteID != nil {
			if parent, ok := set.byID[*s.ParentSuiteID]; ok {
				enriched.ParentSuiteName = parent.DisplayTitle()
			}
		}
		out[i] = enriched
	}
	return out
}
