package panels

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javanhut/RavenEditor/src/config"
	"github.com/javanhut/RavenEditor/src/console"
	"github.com/javanhut/RavenEditor/src/dock"
	"github.com/javanhut/RavenEditor/src/editorlog"
)

type textCall struct {
	x, y float32
	s    string
	c    Color
}

// fakeSurface records draw calls on a 10x20 cell grid.
type fakeSurface struct {
	bounds dock.Rect
	pal    Palette
	fills  []dock.Rect
	texts  []textCall
}

func newFakeSurface(w, h float32) *fakeSurface {
	return &fakeSurface{
		bounds: dock.RectXYWH(0, 0, w, h),
		pal: Palette{
			Foreground: Color{1, 1, 1, 1},
			Muted:      Color{0.5, 0.5, 0.5, 1},
			Accent:     Color{0, 0, 1, 1},
			Warning:    Color{1, 1, 0, 1},
			Error:      Color{1, 0, 0, 1},
		},
	}
}

func (f *fakeSurface) Bounds() dock.Rect            { return f.bounds }
func (f *fakeSurface) Fill(r dock.Rect, c Color)    { f.fills = append(f.fills, r) }
func (f *fakeSurface) CellSize() (float32, float32) { return 10, 20 }
func (f *fakeSurface) Palette() Palette             { return f.pal }
func (f *fakeSurface) Text(x, y float32, s string, c Color) {
	f.texts = append(f.texts, textCall{x, y, s, c})
}

func (f *fakeSurface) strings() []string {
	out := make([]string, len(f.texts))
	for i, t := range f.texts {
		out[i] = t.s
	}
	return out
}

func TestRegisterRejectsBadRoutes(t *testing.T) {
	r := NewRegistry(nil)
	noop := PanelFunc(func(Surface, dock.Tab) {})

	require.NoError(t, r.Register(RouteLog, noop))
	assert.ErrorIs(t, r.Register(RouteLog, noop), ErrDuplicateRoute)
	assert.ErrorIs(t, r.Register("", noop), ErrEmptyRoute)
	assert.Error(t, r.Register(RouteAssets, nil))
	assert.Equal(t, []Route{RouteLog}, r.Routes())
}

func TestValidateReportsUnknownRoutes(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(RouteLog, PanelFunc(func(Surface, dock.Tab) {})))

	tr := dock.NewTree()
	require.NoError(t, tr.InsertTab(0, "Log", string(RouteLog)))
	assert.NoError(t, r.Validate(tr))

	require.NoError(t, tr.InsertTab(0, "Mystery", "mystery"))
	err := r.Validate(tr)
	assert.ErrorIs(t, err, ErrUnknownRoute)
	assert.Contains(t, err.Error(), "mystery")
}

func TestRenderDispatchesAndFallsBack(t *testing.T) {
	var logs bytes.Buffer
	r := NewRegistry(slog.New(slog.NewTextHandler(&logs, nil)))
	var drawn []string
	require.NoError(t, r.Register(RouteViewport, PanelFunc(func(s Surface, tab dock.Tab) {
		drawn = append(drawn, tab.Title)
	})))

	r.Render(newFakeSurface(100, 100), dock.NewTab("Scene", string(RouteViewport)))
	assert.Equal(t, []string{"Scene"}, drawn)

	s := newFakeSurface(300, 100)
	r.Render(s, dock.NewTab("Odd", "odd"))
	r.Render(s, dock.NewTab("Odd", "odd"))
	require.Len(t, s.texts, 2)
	assert.Contains(t, s.texts[0].s, `"odd"`)
	assert.Equal(t, s.pal.Error, s.texts[0].c)
	assert.Equal(t, 1, strings.Count(logs.String(), "no panel for route"))
}

func TestLinesStopAtBottom(t *testing.T) {
	s := newFakeSurface(100, 65)
	l := newLines(s, 0)
	// 5px padding leaves 60px, three rows of 20.
	assert.Equal(t, 3, l.rows())
	assert.True(t, l.add(0, "a", s.pal.Foreground))
	assert.True(t, l.add(0, "b", s.pal.Foreground))
	assert.True(t, l.add(0, "c", s.pal.Foreground))
	assert.False(t, l.add(0, "d", s.pal.Foreground))
	assert.Equal(t, []string{"a", "b", "c"}, s.strings())
}

func TestClip(t *testing.T) {
	assert.Equal(t, "hello", clip("hello", 5))
	assert.Equal(t, "hel…", clip("hello", 4))
	assert.Equal(t, "h", clip("hello", 1))
	assert.Equal(t, "", clip("hello", 0))
}

func TestLogPanelShowsNewestRecords(t *testing.T) {
	ring := editorlog.NewRing(10)
	for _, m := range []string{"one", "two", "three", "four"} {
		ring.Add(editorlog.Record{Level: slog.LevelInfo, Message: m})
	}
	ring.Add(editorlog.Record{Level: slog.LevelError, Message: "boom", Attrs: "err=x"})

	s := newFakeSurface(400, 65)
	(&Log{Ring: ring}).Draw(s, dock.Tab{})
	require.Len(t, s.texts, 3)
	assert.Equal(t, "INFO  three", s.texts[0].s)
	assert.Equal(t, "ERROR boom  err=x", s.texts[2].s)
	assert.Equal(t, s.pal.Error, s.texts[2].c)
}

func demoScene() (*StaticScene, Entity) {
	cam := Entity{ID: uuid.New(), Name: "Camera", Components: []Component{
		{Name: "Transform", Fields: []Field{{"Position", "0 2 -5"}}},
	}}
	scene := NewStaticScene("Demo",
		Entity{ID: uuid.New(), Name: "World"},
		Entity{ID: cam.ID, Name: cam.Name, Depth: 1, Components: cam.Components},
		Entity{ID: uuid.New(), Name: "Light", Depth: 1},
	)
	return scene, cam
}

func TestHierarchyIndentsAndHighlights(t *testing.T) {
	scene, cam := demoScene()
	scene.Select(cam.ID)

	s := newFakeSurface(400, 400)
	(&Hierarchy{Scene: scene}).Draw(s, dock.Tab{})
	assert.Equal(t, []string{"Demo", "World", "Camera", "Light"}, s.strings())
	assert.Equal(t, s.texts[1].x+10, s.texts[2].x)
	assert.Equal(t, s.pal.Accent, s.texts[2].c)
}

func TestInspector(t *testing.T) {
	scene, cam := demoScene()
	s := newFakeSurface(400, 400)
	(&Inspector{Scene: scene}).Draw(s, dock.Tab{})
	assert.Equal(t, []string{"nothing selected"}, s.strings())

	scene.Select(cam.ID)
	s = newFakeSurface(400, 400)
	(&Inspector{Scene: scene}).Draw(s, dock.Tab{})
	assert.Equal(t, []string{"Camera", "Transform", "Position: 0 2 -5"}, s.strings())
}

func TestSelectNextWraps(t *testing.T) {
	scene, _ := demoScene()
	scene.SelectNext(1)
	e, ok := scene.Selected()
	require.True(t, ok)
	assert.Equal(t, "World", e.Name)

	scene.SelectNext(-1)
	e, _ = scene.Selected()
	assert.Equal(t, "Light", e.Name)
}

func TestAssetsListing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "textures"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cube.obj"), make([]byte, 2048), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), nil, 0644))

	a := NewAssets(root, nil)
	entries, err := a.Entries()
	require.NoError(t, err)
	assert.Equal(t, []Asset{{Name: "textures", Dir: true}, {Name: "cube.obj", Size: 2048}}, entries)

	s := newFakeSurface(4000, 400)
	a.Draw(s, dock.Tab{})
	assert.Equal(t, []string{root, "textures/", "cube.obj  2.0 KB"}, s.strings())
}

func TestAssetsMissingRoot(t *testing.T) {
	a := NewAssets(filepath.Join(t.TempDir(), "nope"), nil)
	_, err := a.Entries()
	assert.Error(t, err)

	s := newFakeSurface(4000, 400)
	a.Draw(s, dock.Tab{})
	require.Len(t, s.texts, 2)
	assert.Equal(t, s.pal.Error, s.texts[1].c)
}

func TestViewportCaption(t *testing.T) {
	scene, _ := demoScene()
	s := newFakeSurface(640, 360)
	(&Viewport{Scene: scene}).Draw(s, dock.Tab{Title: "Scene"})
	assert.Equal(t, []string{"Scene  Demo", "640x360"}, s.strings())
	assert.NotEmpty(t, s.fills)
}

func TestConsoleDoesNotRespawnExitedShell(t *testing.T) {
	if _, err := os.Stat("/bin/true"); err != nil {
		t.Skip("/bin/true not available")
	}
	cfg := config.DefaultConfig().Console
	cfg.Shell = "/bin/true"
	c := console.New(cfg, nil)
	t.Cleanup(func() { c.Close() })

	exits := func() int {
		n := 0
		for _, line := range c.Buffer().Lines(0) {
			if line == "[shell exited]" {
				n++
			}
		}
		return n
	}

	p := &Console{Console: c}
	s := newFakeSurface(400, 400)
	p.Draw(s, dock.Tab{})
	require.True(t, c.Started())
	require.Eventually(t, func() bool { return exits() == 1 }, 5*time.Second, 10*time.Millisecond)

	for i := 0; i < 60; i++ {
		p.Draw(s, dock.Tab{})
	}
	time.Sleep(100 * time.Millisecond)
	assert.True(t, c.Exited())
	assert.Equal(t, 1, exits())
}
