package dock

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Anchor names the side a split fraction is measured from.
type Anchor uint8

const (
	AnchorLeft Anchor = iota
	AnchorRight
	AnchorTop
	AnchorBottom
)

func (a Anchor) String() string {
	switch a {
	case AnchorLeft:
		return "Left"
	case AnchorRight:
		return "Right"
	case AnchorTop:
		return "Top"
	case AnchorBottom:
		return "Bottom"
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// Horizontal reports whether the anchor belongs to an HSplit.
func (a Anchor) Horizontal() bool {
	return a == AnchorLeft || a == AnchorRight
}

// Limits applied to every stored fraction so no child collapses to zero.
const (
	MinFraction float32 = 0.05
	MaxFraction float32 = 0.95
)

// Fraction is an anchored split ratio. Left(0.8) and Right(0.2) describe the
// same geometry.
type Fraction struct {
	Anchor Anchor
	Value  float32
}

func Left(f float32) Fraction   { return Fraction{AnchorLeft, f} }
func Right(f float32) Fraction  { return Fraction{AnchorRight, f} }
func Top(f float32) Fraction    { return Fraction{AnchorTop, f} }
func Bottom(f float32) Fraction { return Fraction{AnchorBottom, f} }

func (f Fraction) String() string {
	return fmt.Sprintf("%s(%.2f)", f.Anchor, f.Value)
}

// Shares normalizes the fraction into the (left, right) or (top, bottom)
// shares of its split.
func (f Fraction) Shares() (float32, float32) {
	switch f.Anchor {
	case AnchorRight, AnchorBottom:
		return 1 - f.Value, f.Value
	default:
		return f.Value, 1 - f.Value
	}
}

// First returns the share of the left or top child.
func (f Fraction) First() float32 {
	first, _ := f.Shares()
	return first
}

// WithFirst returns a fraction keeping f's anchor whose first share is v.
func (f Fraction) WithFirst(v float32) Fraction {
	switch f.Anchor {
	case AnchorRight, AnchorBottom:
		return Fraction{f.Anchor, 1 - v}
	default:
		return Fraction{f.Anchor, v}
	}
}

// Clamped returns f with its value forced into [MinFraction, MaxFraction].
func (f Fraction) Clamped() Fraction {
	f.Value = clamp(f.Value, MinFraction, MaxFraction)
	return f
}

// ResizeBounds derives the fraction range that keeps both children at least
// minPanel pixels wide along a split of the given extent. A tiny extent makes
// the bounds cross; they are swapped so the range stays valid.
func ResizeBounds(minPanel, extent float32) (float32, float32) {
	if extent <= 0 {
		return 0.5, 0.5
	}
	lo := minPanel / extent
	hi := 1 - lo
	return math32.Min(lo, hi), math32.Max(lo, hi)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
