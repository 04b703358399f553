package dock

import "github.com/chewxy/math32"

// Vec2 is a point or an offset in framebuffer pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float32 {
	return math32.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect is an axis aligned rectangle. Min is the top left corner and Max the
// bottom right one, y grows downwards like the framebuffer.
type Rect struct {
	Min, Max Vec2
}

// RectXYWH builds a rect from an origin and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

// Width returns the horizontal extent, never negative.
func (r Rect) Width() float32 {
	return math32.Max(0, r.Max.X-r.Min.X)
}

// Height returns the vertical extent, never negative.
func (r Rect) Height() float32 {
	return math32.Max(0, r.Max.Y-r.Min.Y)
}

// IsEmpty reports whether the rect covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether p lies inside r. The max edges are exclusive so
// two adjacent rects never both contain a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// LeftMid returns the midpoint of the left edge.
func (r Rect) LeftMid() Vec2 {
	return Vec2{r.Min.X, (r.Min.Y + r.Max.Y) / 2}
}

// RightMid returns the midpoint of the right edge.
func (r Rect) RightMid() Vec2 {
	return Vec2{r.Max.X, (r.Min.Y + r.Max.Y) / 2}
}

// TopMid returns the midpoint of the top edge.
func (r Rect) TopMid() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, r.Min.Y}
}

// BottomMid returns the midpoint of the bottom edge.
func (r Rect) BottomMid() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, r.Max.Y}
}

// Inset shrinks r by d on every side. The result collapses to its center
// instead of inverting.
func (r Rect) Inset(d float32) Rect {
	out := Rect{Min: Vec2{r.Min.X + d, r.Min.Y + d}, Max: Vec2{r.Max.X - d, r.Max.Y - d}}
	if out.Min.X > out.Max.X {
		c := (r.Min.X + r.Max.X) / 2
		out.Min.X, out.Max.X = c, c
	}
	if out.Min.Y > out.Max.Y {
		c := (r.Min.Y + r.Max.Y) / 2
		out.Min.Y, out.Max.Y = c, c
	}
	return out
}

// SplitX divides r along its width. first is the share of the left part; the
// gutter is taken half from each side.
func (r Rect) SplitX(first, gutter float32) (Rect, Rect) {
	at := r.Min.X + r.Width()*first
	half := gutter / 2
	left := Rect{Min: r.Min, Max: Vec2{math32.Max(r.Min.X, at-half), r.Max.Y}}
	right := Rect{Min: Vec2{math32.Min(r.Max.X, at+half), r.Min.Y}, Max: r.Max}
	return left, right
}

// SplitY divides r along its height. first is the share of the top part.
func (r Rect) SplitY(first, gutter float32) (Rect, Rect) {
	at := r.Min.Y + r.Height()*first
	half := gutter / 2
	top := Rect{Min: r.Min, Max: Vec2{r.Max.X, math32.Max(r.Min.Y, at-half)}}
	bottom := Rect{Min: Vec2{r.Min.X, math32.Min(r.Max.Y, at+half)}, Max: r.Max}
	return top, bottom
}
