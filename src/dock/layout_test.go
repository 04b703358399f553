package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-3

func assertRect(t *testing.T, want, got Rect) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, eps, "min x")
	assert.InDelta(t, want.Min.Y, got.Min.Y, eps, "min y")
	assert.InDelta(t, want.Max.X, got.Max.X, eps, "max x")
	assert.InDelta(t, want.Max.Y, got.Max.Y, eps, "max y")
}

func TestResolveHorizontalSplit(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.8))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(1, "A", "a"))
	require.NoError(t, tr.InsertTab(2, "B", "b"))

	rects := ResolveLayout(tr, RectXYWH(0, 0, 1000, 500), 0)
	require.Len(t, rects, 3)
	assert.InDelta(t, 800, rects[1].Width(), eps)
	assert.InDelta(t, 200, rects[2].Width(), eps)
	assert.InDelta(t, 500, rects[1].Height(), eps)
	assert.InDelta(t, 500, rects[2].Height(), eps)
}

func TestResolveAnchorsAgree(t *testing.T) {
	a, b := NewTree(), NewTree()
	_, _, err := a.HorizontalSplit(0, SideLeft, Left(0.8))
	require.NoError(t, err)
	_, _, err = b.HorizontalSplit(0, SideLeft, Right(0.2))
	require.NoError(t, err)

	root := RectXYWH(0, 0, 1000, 500)
	ra, rb := ResolveLayout(a, root, 0), ResolveLayout(b, root, 0)
	assertRect(t, ra[1], rb[1])
	assertRect(t, ra[2], rb[2])
}

func TestResolveGutter(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.VerticalSplit(0, SideTop, Top(0.5))
	require.NoError(t, err)

	rects := ResolveLayout(tr, RectXYWH(0, 0, 100, 200), 10)
	assertRect(t, Rect{Min: Vec2{0, 0}, Max: Vec2{100, 95}}, rects[1])
	assertRect(t, Rect{Min: Vec2{0, 105}, Max: Vec2{100, 200}}, rects[2])
}

func TestResolveNested(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.5))
	require.NoError(t, err)
	_, _, err = tr.VerticalSplit(2, SideTop, Top(0.25))
	require.NoError(t, err)

	rects := ResolveLayout(tr, RectXYWH(0, 0, 400, 400), 0)
	require.Len(t, rects, 7)
	assertRect(t, RectXYWH(200, 0, 200, 100), rects[5])
	assertRect(t, RectXYWH(200, 100, 200, 300), rects[6])
	assert.True(t, rects[3].IsEmpty(), "below an empty slot")
}

func TestApplyLayoutSkipsEmpty(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.5))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(1, "A", "a"))

	tr.ApplyLayout(ResolveLayout(tr, RectXYWH(0, 0, 100, 100), 0))
	assertRect(t, RectXYWH(0, 0, 50, 100), tr.Node(1).Rect)
	assert.Equal(t, Rect{}, tr.Node(2).Rect)
}

func TestSeparatorRect(t *testing.T) {
	tr := NewTree()
	_, _, err := tr.HorizontalSplit(0, SideLeft, Left(0.5))
	require.NoError(t, err)
	rects := ResolveLayout(tr, RectXYWH(0, 0, 100, 50), 0)

	r, ok := SeparatorRect(tr, rects, 0, 6)
	require.True(t, ok)
	assertRect(t, Rect{Min: Vec2{47, 0}, Max: Vec2{53, 50}}, r)

	_, ok = SeparatorRect(tr, rects, 1, 6)
	assert.False(t, ok)
}

func TestResizeBounds(t *testing.T) {
	lo, hi := ResizeBounds(50, 1000)
	assert.InDelta(t, 0.05, lo, eps)
	assert.InDelta(t, 0.95, hi, eps)

	// A split narrower than two minimum panels collapses the range around
	// the midpoint instead of inverting it.
	lo, hi = ResizeBounds(80, 100)
	assert.InDelta(t, 0.2, lo, eps)
	assert.InDelta(t, 0.8, hi, eps)
	assert.LessOrEqual(t, lo, hi)

	lo, hi = ResizeBounds(10, 0)
	assert.Equal(t, lo, hi)
}

func TestResizedFraction(t *testing.T) {
	n := Node{Kind: KindHSplit, Fraction: Right(0.5)}
	r := RectXYWH(0, 0, 1000, 100)

	f := resizedFraction(n, r, Vec2{100, 0}, 48)
	assert.Equal(t, AnchorRight, f.Anchor)
	assert.InDelta(t, 0.4, f.Value, eps)

	f = resizedFraction(n, r, Vec2{5000, 0}, 48)
	assert.InDelta(t, MinFraction, f.Value, eps)

	v := Node{Kind: KindVSplit, Fraction: Top(0.5)}
	f = resizedFraction(v, RectXYWH(0, 0, 100, 200), Vec2{999, -40}, 10)
	assert.InDelta(t, 0.3, f.Value, eps)
}

func TestFractionShares(t *testing.T) {
	a, b := Left(0.8).Shares()
	assert.InDelta(t, 0.8, a, eps)
	assert.InDelta(t, 0.2, b, eps)
	a, b = Bottom(0.3).Shares()
	assert.InDelta(t, 0.7, a, eps)
	assert.InDelta(t, 0.3, b, eps)
	assert.InDelta(t, 0.9, Bottom(0.3).WithFirst(0.1).Value, eps)
}

func TestRectInset(t *testing.T) {
	assert.Equal(t, RectXYWH(12, 22, 76, 36), RectXYWH(10, 20, 80, 40).Inset(2))
	// Too small to shrink: collapses onto the center.
	r := RectXYWH(0, 0, 3, 10).Inset(2)
	assert.Equal(t, float32(1.5), r.Min.X)
	assert.Equal(t, float32(1.5), r.Max.X)
	assert.Equal(t, float32(6), r.Height())
	assert.True(t, r.IsEmpty())
}
