// Package render draws the editor with OpenGL: dock chrome, toolbar, toasts
// and the surfaces panels paint into.
package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/javanhut/RavenEditor/src/assets/fonts"
	"github.com/javanhut/RavenEditor/src/dock"
	"github.com/javanhut/RavenEditor/src/panels"
)

const defaultFontSize = 14.0
const minFontSize = 8.0
const maxFontSize = 32.0
const zoomStep = 2.0

// Renderer handles OpenGL rendering with a monospace glyph atlas
type Renderer struct {
	theme           Theme
	cellWidth       float32
	cellHeight      float32
	fontSize        float32
	defaultFontSize float32
	currentFont     string

	glyphs    map[rune]Glyph
	fontAtlas uint32

	// Framebuffer size of the current frame.
	width, height int
	proj          [16]float32

	// OpenGL resources
	quadVAO     uint32
	quadVBO     uint32
	program     uint32
	fontProgram uint32
	fontVAO     uint32
	fontVBO     uint32

	// Uniforms
	colorLoc    int32
	projLoc     int32
	texColorLoc int32
	texProjLoc  int32
	texLoc      int32
}

// NewRenderer sets up the GL programs and loads the named font. It needs a
// current GL context.
func NewRenderer(fontName string, fontSize float32, theme string) (*Renderer, error) {
	if _, ok := fonts.GetFont(fontName); !ok {
		fontName = fonts.DefaultFontName
	}
	size := clampFontSize(fontSize)
	r := &Renderer{
		theme:           ThemeByName(theme),
		fontSize:        size,
		defaultFontSize: size,
		currentFont:     fontName,
		glyphs:          make(map[rune]Glyph),
	}
	if err := r.initGL(); err != nil {
		return nil, err
	}
	if err := r.loadFont(); err != nil {
		return nil, err
	}
	return r, nil
}

// loadFont rebuilds the glyph atlas for the current font and size.
func (r *Renderer) loadFont() error {
	data, ok := fonts.GetFont(r.currentFont)
	if !ok {
		data = fonts.DefaultFont()
	}
	a, err := buildAtlas(data, r.fontSize)
	if err != nil {
		return err
	}
	r.uploadAtlas(a)
	r.glyphs = a.glyphs
	r.cellWidth, r.cellHeight = a.cellWidth, a.cellHeight
	return nil
}

// SetThemeByName applies a named theme to the renderer.
func (r *Renderer) SetThemeByName(name string) {
	r.theme = ThemeByName(name)
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// CellSize returns the advance and line height of the font.
func (r *Renderer) CellSize() (float32, float32) {
	return r.cellWidth, r.cellHeight
}

// BeginFrame sets up the viewport and projection for a framebuffer of
// width x height pixels and clears it.
func (r *Renderer) BeginFrame(width, height int) {
	r.width, r.height = width, height
	r.proj = orthoMatrix(0, float32(width), float32(height), 0, -1, 1)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Disable(gl.SCISSOR_TEST)
	bg := r.theme.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// WithSurface runs fn with a surface clipped to b.
func (r *Renderer) WithSurface(b dock.Rect, fn func(s panels.Surface)) {
	if b.IsEmpty() {
		return
	}
	x0, y0 := int32(b.Min.X), int32(float32(r.height)-b.Max.Y)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x0, y0, int32(b.Width()+0.5), int32(b.Height()+0.5))
	defer gl.Disable(gl.SCISSOR_TEST)
	fn(&Surface{r: r, bounds: b})
}

// DrawChrome draws tab strips, separators, the drop preview and the drag
// overlay of a dock frame.
func (r *Renderer) DrawChrome(d *dock.Dock, fs dock.FrameState) {
	drawChrome(r, r.theme, d, fs)
}

// DrawToolbar draws the bar across the top of the window.
func (r *Renderer) DrawToolbar(bar dock.Rect, left, right string) {
	drawToolbar(r, r.theme, bar, left, right)
}

// DrawToast draws a transient message in the bottom right corner.
func (r *Renderer) DrawToast(message string) {
	drawToast(r, r.theme, float32(r.width), float32(r.height), message)
}

func (r *Renderer) fill(b dock.Rect, clr [4]float32) {
	if b.IsEmpty() {
		return
	}
	r.drawRect(b.Min.X, b.Min.Y, b.Width(), b.Height(), clr)
}

func (r *Renderer) text(x, y float32, s string, clr [4]float32) {
	r.drawText(x, y, s, clr)
}

func (r *Renderer) cellSize() (float32, float32) {
	return r.cellWidth, r.cellHeight
}

// drawRect draws a colored rectangle
func (r *Renderer) drawRect(x, y, w, h float32, clr [4]float32) {
	vertices := []float32{
		x, y,
		x + w, y,
		x + w, y + h,
		x, y,
		x + w, y + h,
		x, y + h,
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &r.proj[0])
	gl.Uniform4fv(r.colorLoc, 1, &clr[0])

	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// drawChar draws a single character with its cell bottom at y.
func (r *Renderer) drawChar(x, y float32, char rune, clr [4]float32) {
	glyph, ok := r.glyphs[char]
	if !ok {
		// Fallback to '?' for unknown characters
		glyph, ok = r.glyphs['?']
		if !ok {
			return
		}
	}

	w := float32(glyph.PixelWidth)
	h := float32(glyph.PixelHeight)
	tx, ty := glyph.X, glyph.Y
	tw, th := glyph.Width, glyph.Height

	vertices := []float32{
		x, y - h, tx, ty,
		x + w, y - h, tx + tw, ty,
		x + w, y, tx + tw, ty + th,
		x, y - h, tx, ty,
		x + w, y, tx + tw, ty + th,
		x, y, tx, ty + th,
	}

	gl.UseProgram(r.fontProgram)
	gl.UniformMatrix4fv(r.texProjLoc, 1, false, &r.proj[0])
	gl.Uniform4fv(r.texColorLoc, 1, &clr[0])
	gl.Uniform1i(r.texLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontAtlas)

	gl.BindVertexArray(r.fontVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.fontVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// drawText draws a string of text
func (r *Renderer) drawText(x, y float32, text string, clr [4]float32) {
	for _, char := range text {
		if char != ' ' {
			r.drawChar(x, y, char, clr)
		}
		x += r.cellWidth
	}
}

// ZoomIn increases the font size
func (r *Renderer) ZoomIn() error {
	return r.setFontSize(min(r.fontSize+zoomStep, maxFontSize))
}

// ZoomOut decreases the font size
func (r *Renderer) ZoomOut() error {
	return r.setFontSize(max(r.fontSize-zoomStep, minFontSize))
}

// ZoomReset resets the font size to default
func (r *Renderer) ZoomReset() error {
	return r.setFontSize(r.defaultFontSize)
}

// SetDefaultFontSize sets the default font size and applies it.
func (r *Renderer) SetDefaultFontSize(size float32) error {
	size = clampFontSize(size)
	r.defaultFontSize = size
	return r.setFontSize(size)
}

// ChangeFont switches to a bundled font by name.
func (r *Renderer) ChangeFont(name string) error {
	if _, ok := fonts.GetFont(name); !ok {
		name = fonts.DefaultFontName
	}
	if name == r.currentFont {
		return nil
	}
	prev := r.currentFont
	r.currentFont = name
	if err := r.loadFont(); err != nil {
		r.currentFont = prev
		return err
	}
	return nil
}

// FontSize returns the current font size
func (r *Renderer) FontSize() float32 {
	return r.fontSize
}

// setFontSize changes the font size and reloads the font
func (r *Renderer) setFontSize(size float32) error {
	if size == r.fontSize {
		return nil
	}
	prev := r.fontSize
	r.fontSize = size
	if err := r.loadFont(); err != nil {
		r.fontSize = prev
		return err
	}
	return nil
}

func clampFontSize(size float32) float32 {
	if size < minFontSize {
		return minFontSize
	}
	if size > maxFontSize {
		return maxFontSize
	}
	return size
}

// Destroy cleans up renderer resources
func (r *Renderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.fontVAO)
	gl.DeleteBuffers(1, &r.fontVBO)
	gl.DeleteProgram(r.program)
	gl.DeleteProgram(r.fontProgram)
	gl.DeleteTextures(1, &r.fontAtlas)
}
