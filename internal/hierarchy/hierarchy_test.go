package hierarchy

import (
	"testing"

	"casetree/internal/tms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pint(v int64) *int64 {
	return &v
}

func suite(id int64, title string, parent *int64) tms.Suite {
	return tms.Suite{ID: id, Title: title, ParentSuiteID: parent}
}

// threeLevels is the canonical Root > Child > Grandchild fixture.
func threeLevels() []tms.Suite {
	return []tms.Suite{
		suite(1, "Root", nil),
		suite(2, "Child", pint(1)),
		suite(5, "Grandchild", pint(2)),
	}
}

func TestLevelOf(t *testing.T) {
	suites := threeLevels()

	assert.Equal(t, 0, LevelOf(1, suites))
	assert.Equal(t, 1, LevelOf(2, suites))
	assert.Equal(t, 2, LevelOf(5, suites))
	assert.Equal(t, 0, LevelOf(999, suites), "unknown id reports level 0")
}

func TestPathOf(t *testing.T) {
	suites := threeLevels()

	assert.Equal(t, "Root > Child > Grandchild", PathOf(5, suites, ""))
	assert.Equal(t, "Root/Child", PathOf(2, suites, "/"))
	assert.Equal(t, "Root", PathOf(1, suites, ""))
	assert.Equal(t, "Unknown Suite (42)", PathOf(42, suites, ""))
}

func TestPathOf_MissingTitleFallback(t *testing.T) {
	suites := []tms.Suite{
		suite(1, "", nil),
		suite(2, "Named", pint(1)),
	}

	assert.Equal(t, "Suite 1 > Named", PathOf(2, suites, ""))
}

func TestRootIDOf(t *testing.T) {
	suites := threeLevels()

	rootID, ok := RootIDOf(5, suites)
	require.True(t, ok)
	assert.Equal(t, int64(1), rootID)

	// A root resolves to itself, distinct from the unknown-id case.
	rootID, ok = RootIDOf(1, suites)
	require.True(t, ok)
	assert.Equal(t, int64(1), rootID)

	_, ok = RootIDOf(999, suites)
	assert.False(t, ok, "absent id is the orphan signal")
}

func TestRootIDs_DanglingParentIsRoot(t *testing.T) {
	suites := []tms.Suite{
		suite(1, "Root", nil),
		suite(2, "Orphan", pint(999)),
	}

	roots := RootIDs(suites)
	assert.Contains(t, roots, int64(1))
	assert.Contains(t, roots, int64(2))
	assert.Len(t, roots, 2)
}

func TestCycleSafety(t *testing.T) {
	suites := []tms.Suite{
		suite(1, "A", pint(2)),
		suite(2, "B", pint(1)),
	}

	// All of these must terminate and produce a renderable result.
	ancestors := AncestorsOf(1, suites)
	assert.Len(t, ancestors, 1)
	assert.Equal(t, int64(2), ancestors[0].ID)

	path := PathOf(1, suites, "")
	assert.Equal(t, "B > A", path)

	assert.Equal(t, 1, LevelOf(1, suites), "cycle member is treated as rooted at detection point")

	rootID, ok := RootIDOf(1, suites)
	require.True(t, ok)
	assert.Equal(t, int64(2), rootID)
}

func TestAncestorsOf(t *testing.T) {
	suites := threeLevels()

	assert.Empty(t, AncestorsOf(1, suites), "a root has no ancestors")
	assert.Empty(t, AncestorsOf(999, suites))

	ancestors := AncestorsOf(5, suites)
	require.Len(t, ancestors, 2)
	assert.Equal(t, int64(2), ancestors[0].ID, "nearest ancestor first")
	assert.Equal(t, int64(1), ancestors[1].ID)
}

func TestDescendantsOf(t *testing.T) {
	suites := []tms.Suite{
		suite(1, "Root", nil),
		suite(2, "Child A", pint(1)),
		suite(3, "Child B", pint(1)),
		suite(4, "Grandchild", pint(2)),
		suite(5, "Other Root", nil),
	}

	desc := DescendantsOf(1, suites)
	ids := make([]int64, len(desc))
	for i, s := range desc {
		ids[i] = s.ID
	}
	assert.Equal(t, []int64{2, 3, 4}, ids)

	assert.Empty(t, DescendantsOf(4, suites), "a leaf has no descendants")
	assert.Empty(t, DescendantsOf(999, suites))
}

func TestDescendantsOf_CycleTerminates(t *testing.T) {
	suites := []tms.Suite{
		suite(1, "A", pint(2)),
		suite(2, "B", pint(1)),
	}

	desc := DescendantsOf(1, suites)
	require.Len(t, desc, 1)
	assert.Equal(t, int64(2), desc[0].ID)
}

func TestEnrich(t *testing.T) {
	suites := []tms.Suite{
		suite(1, "Root", nil),
		suite(2, "Child", pint(1)),
		suite(5, "Grandchild", pint(2)),
		suite(7, "", pint(999)), // dangling parent, no title
	}

	enriched := Enrich(suites)
	require.Len(t, enriched, len(suites))

	// Originals stay untouched.
	assert.Nil(t, suites[2].Level)
	assert.Empty(t, suites[2].Path)

	grand := enriched[2]
	require.NotNil(t, grand.Level)
	assert.Equal(t, 2, *grand.Level)
	require.NotNil(t, grand.RootSuiteID)
	assert.Equal(t, int64(1), *grand.RootSuiteID)
	assert.Equal(t, "Root", grand.RootSuiteName)
	assert.Equal(t, "Root > Child > Grandchild", grand.Path)
	assert.Equal(t, "Child", grand.ParentSuiteName)

	// Original identity fields are preserved.
	assert.Equal(t, int64(5), grand.ID)
	assert.Equal(t, "Grandchild", grand.Title)
	require.NotNil(t, grand.ParentSuiteID)
	assert.Equal(t, int64(2), *grand.ParentSuiteID)

	orphan := enriched[3]
	require.NotNil(t, orphan.Level)
	assert.Equal(t, 0, *orphan.Level, "dangling parent makes the suite its own root")
	require.NotNil(t, orphan.RootSuiteID)
	assert.Equal(t, int64(7), *orphan.RootSuiteID)
	assert.Equal(t, "Suite 7", orphan.RootSuiteName)
	assert.Equal(t, "Suite 7", orphan.Path)
	assert.Empty(t, orphan.ParentSuiteName, "non-resident parent has no name")
}

func TestSet_DuplicateIDsFirstWins(t *testing.T) {
	suites := []tms.Suite{
		suite(1, "First", nil),
		suite(1, "Second", nil),
		suite(2, "Child", pint(1)),
	}

	set := NewSet(suites)
	s, ok := set.Get(1)
	require.True(t, ok)
	assert.Equal(t, "First", s.Title)
	assert.Equal(t, "First > Child", set.PathOf(2, ""))
}

func TestPathEntries(t *testing.T) {
	suites := threeLevels()
	set := NewSet(suites)

	entries := set.PathEntries(5)
	require.Len(t, entries, 3)
	assert.Equal(t, tms.PathEntry{ID: 1, Name: "Root"}, entries[0])
	assert.Equal(t, tms.PathEntry{ID: 5, Name: "Grandchild"}, entries[2])

	fallback := set.PathEntries(99999)
	require.Len(t, fallback, 1)
	assert.Equal(t, tms.PathEntry{ID: 99999, Name: "Suite 99999"}, fallback[0])
}
