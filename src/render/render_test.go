package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/javanhut/RavenEditor/src/dock"
)

type fillCall struct {
	r dock.Rect
	c [4]float32
}

type textCall struct {
	x, y float32
	s    string
	c    [4]float32
}

// fakeCanvas records chrome drawing on an 8x16 cell.
type fakeCanvas struct {
	fills []fillCall
	texts []textCall
}

func (f *fakeCanvas) fill(r dock.Rect, c [4]float32) { f.fills = append(f.fills, fillCall{r, c}) }
func (f *fakeCanvas) text(x, y float32, s string, c [4]float32) {
	f.texts = append(f.texts, textCall{x, y, s, c})
}
func (f *fakeCanvas) cellSize() (float32, float32) { return 8, 16 }

func (f *fakeCanvas) strings() []string {
	out := make([]string, len(f.texts))
	for i, t := range f.texts {
		out[i] = t.s
	}
	return out
}

func (f *fakeCanvas) filled(r dock.Rect, c [4]float32) bool {
	for _, call := range f.fills {
		if call.r == r && call.c == c {
			return true
		}
	}
	return false
}

var screen = dock.RectXYWH(0, 0, 1000, 500)

// newDock builds A (a1, a2) on the left half and B (b1) on the right.
func newDock(t *testing.T) *dock.Dock {
	t.Helper()
	style := dock.DefaultStyle()
	style.Gutter = 0
	d := dock.New(style, nil)
	tr := d.Tree()
	_, _, err := tr.HorizontalSplit(0, dock.SideLeft, dock.Left(0.5))
	require.NoError(t, err)
	require.NoError(t, tr.InsertTab(1, "a1", "a"))
	require.NoError(t, tr.InsertTab(1, "a2", "a"))
	require.NoError(t, tr.InsertTab(2, "b1", "b"))
	return d
}

func TestChromeIdle(t *testing.T) {
	th := DefaultTheme()
	d := newDock(t)
	fs := d.Frame(dock.Input{}, screen, nil)

	cv := &fakeCanvas{}
	drawChrome(cv, th, d, fs)

	assert.Equal(t, []string{"a1", "a2", "b1"}, cv.strings())
	assert.Equal(t, float32(10), cv.texts[0].x)
	assert.Equal(t, float32(20), cv.texts[0].y)
	assert.Equal(t, th.Foreground, cv.texts[0].c)
	assert.Equal(t, th.Muted, cv.texts[1].c)

	assert.True(t, cv.filled(dock.RectXYWH(0, 0, 64, 24), th.Panel), "active header")
	assert.True(t, cv.filled(dock.RectXYWH(499, 0, 2, 500), th.TabBar), "separator")
}

func TestChromeHighlightsPressedHeader(t *testing.T) {
	th := DefaultTheme()
	d := newDock(t)
	fs := d.Frame(dock.Input{Pointer: dock.Vec2{X: 80, Y: 10}, Pressed: true, Down: true}, screen, nil)

	cv := &fakeCanvas{}
	drawChrome(cv, th, d, fs)
	assert.True(t, cv.filled(dock.RectXYWH(64, 0, 64, 24), th.Selection))
}

func TestChromeHighlightsHeldSeparator(t *testing.T) {
	th := DefaultTheme()
	d := newDock(t)
	fs := d.Frame(dock.Input{Pointer: dock.Vec2{X: 500, Y: 250}, Pressed: true, Down: true}, screen, nil)
	require.Equal(t, 0, fs.Resizing)

	cv := &fakeCanvas{}
	drawChrome(cv, th, d, fs)
	assert.True(t, cv.filled(dock.RectXYWH(499, 0, 2, 500), th.TabActive))
}

func TestChromeDragOverlayAndPreview(t *testing.T) {
	th := DefaultTheme()
	d := newDock(t)
	d.Frame(dock.Input{Pointer: dock.Vec2{X: 80, Y: 10}, Pressed: true, Down: true}, screen, nil)
	d.Frame(dock.Input{Pointer: dock.Vec2{X: 200, Y: 10}, Down: true}, screen, nil)
	fs := d.Frame(dock.Input{Pointer: dock.Vec2{X: 990, Y: 250}, Down: true}, screen, nil)
	require.NotNil(t, fs.Drag)
	require.Equal(t, dock.ZoneRight, fs.Zone)

	cv := &fakeCanvas{}
	drawChrome(cv, th, d, fs)

	assert.True(t, cv.filled(dock.RectXYWH(752, 2, 246, 496), th.Selection), "preview")
	assert.True(t, cv.filled(dock.RectXYWH(750, 0, 250, 2), th.TabActive), "preview stroke")
	assert.True(t, cv.filled(dock.RectXYWH(64, 0, 64, 24), withAlpha(th.Muted, 0.25)), "ghost source header")
	assert.True(t, cv.filled(dock.RectXYWH(958, 238, 64, 24), withAlpha(th.TabActive, 0.9)), "overlay")

	last := cv.texts[len(cv.texts)-1]
	assert.Equal(t, "a2", last.s)
	assert.Equal(t, th.Background, last.c)
	assert.Equal(t, float32(968), last.x)
}

func TestDrawLabelTruncates(t *testing.T) {
	cv := &fakeCanvas{}
	drawLabel(cv, dock.RectXYWH(0, 0, 64, 24), 10, "Hierarchy", [4]float32{})
	require.Len(t, cv.texts, 1)
	// (64 - 20) / 8 leaves five cells.
	assert.Equal(t, "Hier…", cv.texts[0].s)

	cv = &fakeCanvas{}
	drawLabel(cv, dock.RectXYWH(0, 0, 20, 24), 10, "x", [4]float32{})
	assert.Empty(t, cv.texts)
}

func TestToolbar(t *testing.T) {
	th := DefaultTheme()
	cv := &fakeCanvas{}
	drawToolbar(cv, th, dock.RectXYWH(0, 0, 400, 24), "Raven Editor", "Demo")
	assert.Equal(t, []string{"Raven Editor", "Demo"}, cv.strings())
	assert.Equal(t, float32(360), cv.texts[1].x)

	cv = &fakeCanvas{}
	drawToolbar(cv, th, dock.RectXYWH(0, 0, 100, 24), "Raven Editor", "Demo")
	assert.Equal(t, []string{"Raven Edi…"}, cv.strings())
}

func TestToast(t *testing.T) {
	th := DefaultTheme()
	cv := &fakeCanvas{}
	drawToast(cv, th, 800, 600, "layout reset")
	require.Len(t, cv.texts, 1)
	assert.Equal(t, "layout reset", cv.texts[0].s)
	require.Len(t, cv.fills, 1)
	assert.Less(t, cv.fills[0].r.Max.X, float32(800))

	cv = &fakeCanvas{}
	drawToast(cv, th, 800, 600, "  ")
	assert.Empty(t, cv.fills)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, DefaultTheme(), ThemeByName("no-such-theme"))
	assert.Equal(t, ThemeByName("crow-black"), ThemeByName(" Crow-Black "))
	assert.NotEqual(t, ThemeByName("crow-black"), DefaultTheme())

	th := ThemeByName("catppuccin")
	pal := th.Palette()
	assert.Equal(t, th.TabActive, pal.Accent)
	assert.Equal(t, th.Panel, pal.Panel)
	assert.Equal(t, th.Error, pal.Error)
}

func TestBuildAtlas(t *testing.T) {
	a, err := buildAtlas(gomono.TTF, 14)
	require.NoError(t, err)
	assert.Positive(t, a.cellWidth)
	assert.Greater(t, a.cellHeight, a.cellWidth)
	assert.Len(t, a.alpha, a.size*a.size)

	for _, r := range []rune{'M', '?', '…'} {
		_, ok := a.glyphs[r]
		assert.True(t, ok, "glyph %q", r)
	}

	g := a.glyphs['M']
	inked := false
	for y := g.PY; y < g.PY+g.PixelHeight && !inked; y++ {
		for x := g.PX; x < g.PX+g.PixelWidth; x++ {
			if a.alpha[y*a.size+x] > 0 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "'M' left no ink in the atlas")
}

func TestBuildAtlasRejectsGarbage(t *testing.T) {
	_, err := buildAtlas([]byte("not a font"), 14)
	assert.Error(t, err)
}

func TestAtlasSide(t *testing.T) {
	assert.Equal(t, 256, atlasSide(100, 10, 20))
	assert.Equal(t, 512, atlasSide(1000, 10, 20))
	assert.Equal(t, maxAtlasSize, atlasSide(10, 1000, 1000))
}

func TestClampFontSize(t *testing.T) {
	assert.Equal(t, float32(minFontSize), clampFontSize(1))
	assert.Equal(t, float32(maxFontSize), clampFontSize(100))
	assert.Equal(t, float32(15), clampFontSize(15))
}
