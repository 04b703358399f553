package render

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Glyph contains information about a rendered glyph
type Glyph struct {
	X, Y          float32 // Position in atlas (normalized 0-1)
	Width, Height float32 // Size in atlas (normalized 0-1)
	PixelWidth    int     // Actual pixel width
	PixelHeight   int     // Actual pixel height
	// Top-left of the glyph cell in atlas pixels.
	PX, PY int
}

// Character ranges baked into the atlas.
var charRanges = []struct{ start, end rune }{
	{32, 126},        // Printable ASCII
	{160, 255},       // Extended Latin-1
	{0x2010, 0x2027}, // Dashes, quotes, ellipsis
	{0x2190, 0x21FF}, // Arrows
	{0x2500, 0x257F}, // Box Drawing
	{0x25A0, 0x25FF}, // Geometric Shapes
}

const maxAtlasSize = 4096

// atlas is a single-channel glyph sheet of one monospace face.
type atlas struct {
	size       int
	alpha      []byte
	glyphs     map[rune]Glyph
	cellWidth  float32
	cellHeight float32
}

// buildAtlas rasterises the glyphs of charRanges present in fontData at
// the given point size.
func buildAtlas(fontData []byte, size float32) (*atlas, error) {
	parsedFont, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	advance, _ := face.GlyphAdvance('M')
	a := &atlas{
		glyphs:     make(map[rune]Glyph),
		cellWidth:  float32(advance.Ceil()),
		cellHeight: float32((metrics.Ascent + metrics.Descent).Ceil()),
	}
	charWidth, charHeight := int(a.cellWidth), int(a.cellHeight)
	if charWidth <= 0 || charHeight <= 0 {
		return nil, fmt.Errorf("font has empty cell %dx%d", charWidth, charHeight)
	}

	var buf sfnt.Buffer
	var runes []rune
	for _, cr := range charRanges {
		for c := cr.start; c <= cr.end; c++ {
			idx, err := parsedFont.GlyphIndex(&buf, c)
			if err != nil || idx == 0 {
				continue
			}
			runes = append(runes, c)
		}
	}
	a.size = atlasSide(len(runes), charWidth, charHeight)

	img := image.NewRGBA(image.Rect(0, 0, a.size, a.size))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: img, Src: image.White, Face: face}

	ascent := metrics.Ascent.Ceil()
	x, y := 0, ascent
	for _, c := range runes {
		if x+charWidth > a.size {
			x = 0
			y += charHeight
		}
		if y-ascent+charHeight > a.size {
			break // Atlas full
		}
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(string(c))

		a.glyphs[c] = Glyph{
			X:           float32(x) / float32(a.size),
			Y:           float32(y-ascent) / float32(a.size),
			Width:       float32(charWidth) / float32(a.size),
			Height:      float32(charHeight) / float32(a.size),
			PixelWidth:  charWidth,
			PixelHeight: charHeight,
			PX:          x,
			PY:          y - ascent,
		}
		x += charWidth
	}

	// Keep the alpha channel only; the texture is single channel.
	a.alpha = make([]byte, a.size*a.size)
	for i := range a.alpha {
		a.alpha[i] = img.Pix[i*4+3]
	}
	return a, nil
}

// atlasSide returns the smallest power of two side, from 256, holding n
// cells of w x h pixels.
func atlasSide(n, w, h int) int {
	side := 256
	for side < maxAtlasSize && (side/w)*(side/h) < n {
		side *= 2
	}
	return side
}
