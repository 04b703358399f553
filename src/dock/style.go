package dock

import (
	"unicode/utf8"

	"github.com/chewxy/math32"
)

// Style holds the geometry knobs of the dock. Everything is in pixels.
type Style struct {
	// Gutter is the gap left between the two children of a split.
	Gutter float32
	// HandleThickness is the minimum hit width of a split separator.
	HandleThickness float32
	// MinPanelSize bounds how small a resize drag can make a child.
	MinPanelSize float32

	TabHeight   float32
	TabPadding  float32
	TabMinWidth float32
	// CharWidth is the advance of one glyph of the tab title font.
	CharWidth float32

	// A pressed tab header becomes a drag once the pointer moved further
	// than these on either axis.
	DragThresholdX float32
	DragThresholdY float32
}

// DefaultStyle returns the stock dock geometry.
func DefaultStyle() Style {
	return Style{
		Gutter:          4,
		HandleThickness: 6,
		MinPanelSize:    48,
		TabHeight:       24,
		TabPadding:      10,
		TabMinWidth:     64,
		CharWidth:       8,
		DragThresholdX:  30,
		DragThresholdY:  6,
	}
}

// TabStripRect is the header band at the top of a container rect.
func (s Style) TabStripRect(r Rect) Rect {
	h := math32.Min(s.TabHeight, r.Height())
	return Rect{Min: r.Min, Max: Vec2{r.Max.X, r.Min.Y + h}}
}

// ContentRect is the part of a container rect below its tab strip.
func (s Style) ContentRect(r Rect) Rect {
	strip := s.TabStripRect(r)
	return Rect{Min: Vec2{r.Min.X, strip.Max.Y}, Max: r.Max}
}

// HeaderWidth returns the width of the header for a title.
func (s Style) HeaderWidth(title string) float32 {
	w := float32(utf8.RuneCountInString(title))*s.CharWidth + 2*s.TabPadding
	return math32.Max(w, s.TabMinWidth)
}

// TabHeaders lays out one header per tab, left to right in list order.
// Headers past the right edge of the strip are clipped to zero width.
func (s Style) TabHeaders(r Rect, tabs []Tab) []Rect {
	strip := s.TabStripRect(r)
	out := make([]Rect, len(tabs))
	x := strip.Min.X
	for i, tab := range tabs {
		x1 := math32.Min(x+s.HeaderWidth(tab.Title), strip.Max.X)
		out[i] = Rect{Min: Vec2{x, strip.Min.Y}, Max: Vec2{math32.Max(x, x1), strip.Max.Y}}
		x = x1
	}
	return out
}
