package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexArithmetic(t *testing.T) {
	for i := 0; i < 64; i++ {
		assert.Equal(t, 2*i+1, LeftChild(i))
		assert.Equal(t, 2*i+2, RightChild(i))
		assert.Equal(t, i, Parent(LeftChild(i)))
		assert.Equal(t, i, Parent(RightChild(i)))
	}
	assert.Equal(t, -1, Parent(0))

	levels := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 6: 2, 7: 3, 14: 3, 15: 4}
	for i, want := range levels {
		assert.Equal(t, want, Level(i), "level of %d", i)
	}
}

func TestRelocated(t *testing.T) {
	assert.Equal(t, 5, relocated(2, 2, 5))
	assert.Equal(t, 6, relocated(2, 0, 2))
	assert.Equal(t, 1, relocated(3, 1, 0))
	assert.Equal(t, 2, relocated(4, 1, 0))
}

func TestFreshSplitHasThreeSlots(t *testing.T) {
	tr := NewTree()
	require.Equal(t, 1, tr.Len())

	l, r, err := tr.HorizontalSplit(0, SideLeft, Left(0.8))
	require.NoError(t, err)
	assert.Equal(t, 1, l)
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, KindHSplit, tr.Node(0).Kind)
	assert.True(t, tr.Node(1).IsEmpty())
	assert.True(t, tr.Node(2).IsEmpty())
}

func TestSplitRejectsWrongAxis(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideTop, Left(0.5))
	assert.ErrorIs(t, err, ErrSideMismatch)
	_, _, err = tr.HorizontalSplit(0, SideLeft, Top(0.5))
	assert.ErrorIs(t, err, ErrAnchorMismatch)
	_, _, err = tr.VerticalSplit(0, SideTop, Right(0.5))
	assert.ErrorIs(t, err, ErrAnchorMismatch)
	assert.Equal(t, 1, tr.Len())
}

func TestSplitClampsFraction(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.VerticalSplit(0, SideTop, Top(1.5))
	require.NoError(t, err)
	assert.Equal(t, Top(MaxFraction), tr.Node(0).Fraction)
}

func TestSplitMovesExistingContent(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertTab(0, "Scene", "viewport"))

	_, r, err := tr.HorizontalSplit(0, SideRight, Right(0.3))
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.True(t, tr.Node(1).IsEmpty())
	assert.Equal(t, "Scene", tr.Node(2).Tabs[0].Title)
}

func TestSplitRelocatesSubtree(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.8))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(1, "A", "a"))
	require.NoError(t, tr.InsertTab(2, "B", "b"))

	// Splitting the root pushes the whole existing tree one level down.
	_, _, err = tr.HorizontalSplit(0, SideRight, Right(0.3))
	require.NoError(t, err)
	assert.Equal(t, 7, tr.Len())
	assert.Equal(t, KindHSplit, tr.Node(0).Kind)
	assert.Equal(t, Right(0.3), tr.Node(0).Fraction)
	assert.True(t, tr.Node(1).IsEmpty())
	assert.Equal(t, Left(0.8), tr.Node(2).Fraction)
	assert.Equal(t, "A", tr.Node(5).Tabs[0].Title)
	assert.Equal(t, "B", tr.Node(6).Tabs[0].Title)
}

func TestDeepSplitGrowsByLevel(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.5))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(2, "B", "b"))

	top, bottom, err := tr.VerticalSplit(2, SideTop, Top(0.5))
	require.NoError(t, err)
	assert.Equal(t, 5, top)
	assert.Equal(t, 6, bottom)
	assert.Equal(t, 7, tr.Len())
	assert.Equal(t, "B", tr.Node(5).Tabs[0].Title)

	_, _, err = tr.HorizontalSplit(6, SideLeft, Left(0.5))
	require.NoError(t, err)
	assert.Equal(t, 15, tr.Len())
}

func TestInsertExtractRoundTrip(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertTab(0, "Log", "log"))
	before := tr.Clone()

	require.NoError(t, tr.InsertTab(0, "Console", "console"))
	assert.Len(t, tr.Node(0).Tabs, 2)

	tab, ok := tr.ExtractTab(0, 1)
	require.True(t, ok)
	assert.Equal(t, "Console", tab.Title)
	assert.Equal(t, "console", tab.Route)
	assert.True(t, tr.Equal(before))
}

func TestInsertTabOnSplitFails(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.5))
	require.NoError(t, err)

	err = tr.InsertTab(0, "X", "x")
	assert.ErrorIs(t, err, ErrNotContainer)
	assert.Equal(t, KindHSplit, tr.Node(0).Kind)
}

func TestExtractTabBounds(t *testing.T) {
	tr := NewTree()
	_, ok := tr.ExtractTab(0, 0)
	assert.False(t, ok, "empty slot")

	require.NoError(t, tr.InsertTab(0, "A", "a"))
	_, ok = tr.ExtractTab(0, 1)
	assert.False(t, ok, "index == len")
	_, ok = tr.ExtractTab(0, -1)
	assert.False(t, ok)
	assert.Len(t, tr.Node(0).Tabs, 1)
}

func TestExtractTabKeepsActive(t *testing.T) {
	tr := NewTree()
	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, tr.InsertTab(0, title, title))
	}
	require.True(t, tr.SetActive(0, 2))

	_, ok := tr.ExtractTab(0, 0)
	require.True(t, ok)
	tab, _ := tr.Node(0).ActiveTab()
	assert.Equal(t, "c", tab.Title)

	_, ok = tr.ExtractTab(0, 1)
	require.True(t, ok)
	tab, _ = tr.Node(0).ActiveTab()
	assert.Equal(t, "b", tab.Title)
}

func TestAppendTab(t *testing.T) {
	tr := NewTree()
	assert.False(t, tr.AppendTab(0, NewTab("a", "a")), "append needs a container")

	require.NoError(t, tr.InsertTab(0, "a", "a"))
	tab := NewTab("b", "b")
	assert.True(t, tr.AppendTab(0, tab))
	assert.Equal(t, tab, tr.Node(0).Tabs[1])
}

func TestSetFraction(t *testing.T) {
	tr := NewTree()
	assert.ErrorIs(t, tr.SetFraction(0, Left(0.5)), ErrNotSplit)

	_, _, err := tr.VerticalSplit(0, SideTop, Top(0.5))
	require.NoError(t, err)
	assert.ErrorIs(t, tr.SetFraction(0, Left(0.5)), ErrAnchorMismatch)
	require.NoError(t, tr.SetFraction(0, Bottom(0.01)))
	assert.Equal(t, Bottom(MinFraction), tr.Node(0).Fraction)
}

func TestNodeOutOfRangePanics(t *testing.T) {
	tr := NewTree()
	assert.Panics(t, func() { tr.Node(3) })
	assert.Panics(t, func() { tr.InsertTab(-1, "a", "a") })
}

func TestCleanupPromotesSibling(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.5))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(1, "A", "a"))
	require.NoError(t, tr.InsertTab(2, "B", "b"))

	_, ok := tr.ExtractTab(1, 0)
	require.True(t, ok)
	assert.True(t, tr.Cleanup())

	assert.Equal(t, 1, tr.Len())
	n := tr.Node(0)
	assert.Equal(t, KindContainer, n.Kind)
	assert.Equal(t, "B", n.Tabs[0].Title)
}

func TestCleanupPromotesSubtree(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.VerticalSplit(0, SideTop, Top(0.7))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(2, "C", "c"))
	_, _, err = tr.HorizontalSplit(1, SideLeft, Left(0.4))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(3, "A", "a"))
	require.NoError(t, tr.InsertTab(4, "B", "b"))

	_, ok := tr.ExtractTab(2, 0)
	require.True(t, ok)
	assert.True(t, tr.Cleanup())

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, KindHSplit, tr.Node(0).Kind)
	assert.Equal(t, Left(0.4), tr.Node(0).Fraction)
	assert.Equal(t, "A", tr.Node(1).Tabs[0].Title)
	assert.Equal(t, "B", tr.Node(2).Tabs[0].Title)
}

func TestCleanupNoop(t *testing.T) {
	tr := NewTree()
	assert.False(t, tr.Cleanup())
	require.NoError(t, tr.InsertTab(0, "A", "a"))
	assert.False(t, tr.Cleanup())
	assert.Equal(t, 1, tr.Len())
}

func TestCleanupLastTabLeavesEmptyRoot(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertTab(0, "A", "a"))
	_, ok := tr.ExtractTab(0, 0)
	require.True(t, ok)
	assert.True(t, tr.Cleanup())
	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Node(0).IsEmpty())
}

func TestEqualIgnoresRects(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertTab(0, "A", "a"))
	other := tr.Clone()
	tr.UpdateRect(0, RectXYWH(0, 0, 10, 10))
	assert.True(t, tr.Equal(other))

	require.True(t, other.AppendTab(0, NewTab("B", "b")))
	assert.False(t, tr.Equal(other))
}

func TestCloneIsDeep(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertTab(0, "A", "a"))
	c := tr.Clone()
	require.NoError(t, c.InsertTab(0, "B", "b"))
	assert.Len(t, tr.Node(0).Tabs, 1)
}

func TestString(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.5))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(1, "A", "a"))
	require.NoError(t, tr.InsertTab(1, "B", "b"))

	want := "0 HSplit Left(0.50)\n  1 Container [A*, B]\n"
	assert.Equal(t, want, tr.String())
}
