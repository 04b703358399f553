package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javanhut/RavenEditor/src/dock"
)

// canvas is the drawing the chrome needs. Text y is the bottom of the text
// cell.
type canvas interface {
	fill(r dock.Rect, c [4]float32)
	text(x, y float32, s string, c [4]float32)
	cellSize() (float32, float32)
}

// chromeSource is the dock state the chrome is drawn from.
type chromeSource interface {
	Tree() *dock.Tree
	Style() dock.Style
	Tracking(key dock.WidgetKey) bool
}

func drawChrome(cv canvas, th Theme, d chromeSource, fs dock.FrameState) {
	t, style := d.Tree(), d.Style()
	var dragged *dock.DragState
	if fs.Drag != nil {
		dragged = &fs.Drag.Source
	}

	for _, i := range t.Containers() {
		if i >= len(fs.Rects) || fs.Rects[i].IsEmpty() {
			continue
		}
		drawTabStrip(cv, th, t.Node(i), i, fs.Rects[i], style, d, dragged)
	}

	for i := 0; i < t.Len(); i++ {
		sep, ok := dock.SeparatorRect(t, fs.Rects, i, 2)
		if !ok {
			continue
		}
		clr := th.TabBar
		if fs.Resizing == i {
			clr = th.TabActive
		}
		cv.fill(sep, clr)
	}

	if fs.Hover != nil && !fs.Preview.IsEmpty() {
		cv.fill(fs.Preview.Inset(2), th.Selection)
		strokeRect(cv, fs.Preview, 2, th.TabActive)
	}

	if fs.Drag != nil {
		drawDragOverlay(cv, th, fs.Drag, style)
	}
}

func drawTabStrip(cv canvas, th Theme, n dock.Node, container int, r dock.Rect, style dock.Style, d chromeSource, dragged *dock.DragState) {
	strip := style.TabStripRect(r)
	cv.fill(strip, th.TabBar)
	for j, h := range style.TabHeaders(r, n.Tabs) {
		if h.Width() <= 0 {
			continue
		}
		key := dock.WidgetKey{Container: container, Tab: j}
		fg := th.Muted
		switch {
		case dragged != nil && dock.WidgetKey(*dragged) == key:
			cv.fill(h, withAlpha(th.Muted, 0.25))
		case d.Tracking(key):
			cv.fill(h, th.Selection)
			fg = th.Foreground
		case j == n.Active:
			cv.fill(h, th.Panel)
			fg = th.Foreground
		}
		if j == n.Active {
			cv.fill(dock.Rect{Min: h.Min, Max: dock.Vec2{X: h.Max.X, Y: h.Min.Y + 2}}, th.TabActive)
		}
		drawLabel(cv, h, style.TabPadding, n.Tabs[j].Title, fg)
	}
}

func drawDragOverlay(cv canvas, th Theme, drag *dock.DragOverlay, style dock.Style) {
	w := style.HeaderWidth(drag.Tab.Title)
	h := style.TabHeight
	box := dock.RectXYWH(drag.Pointer.X-w/2, drag.Pointer.Y-h/2, w, h)
	cv.fill(box, withAlpha(th.TabActive, 0.9))
	drawLabel(cv, box, style.TabPadding, drag.Tab.Title, th.Background)
}

// drawLabel draws title left-aligned and vertically centred in box,
// truncated to the width left after padding.
func drawLabel(cv canvas, box dock.Rect, padding float32, title string, c [4]float32) {
	cw, ch := cv.cellSize()
	if cw <= 0 {
		return
	}
	cols := int((box.Width() - 2*padding) / cw)
	if cols <= 0 {
		return
	}
	if ansi.StringWidth(title) > cols {
		title = ansi.Truncate(title, cols, "…")
	}
	y := box.Min.Y + (box.Height()+ch)/2
	cv.text(box.Min.X+padding, y, title, c)
}

func strokeRect(cv canvas, r dock.Rect, w float32, c [4]float32) {
	cv.fill(dock.Rect{Min: r.Min, Max: dock.Vec2{X: r.Max.X, Y: r.Min.Y + w}}, c)
	cv.fill(dock.Rect{Min: dock.Vec2{X: r.Min.X, Y: r.Max.Y - w}, Max: r.Max}, c)
	cv.fill(dock.Rect{Min: r.Min, Max: dock.Vec2{X: r.Min.X + w, Y: r.Max.Y}}, c)
	cv.fill(dock.Rect{Min: dock.Vec2{X: r.Max.X - w, Y: r.Min.Y}, Max: r.Max}, c)
}

func drawToolbar(cv canvas, th Theme, bar dock.Rect, left, right string) {
	if bar.IsEmpty() {
		return
	}
	cv.fill(bar, th.TabBar)
	cw, ch := cv.cellSize()
	if cw <= 0 {
		return
	}
	y := bar.Min.Y + (bar.Height()+ch)/2
	cols := int(bar.Width()/cw) - 2
	if cols <= 0 {
		return
	}
	left = ansi.Truncate(left, cols, "…")
	cv.text(bar.Min.X+cw, y, left, th.Foreground)

	// The right text only shows when it fits beside the left one.
	used := ansi.StringWidth(left) + 2
	if right != "" && used+ansi.StringWidth(right) <= cols {
		x := bar.Max.X - cw - float32(ansi.StringWidth(right))*cw
		cv.text(x, y, right, th.Muted)
	}
}

func drawToast(cv canvas, th Theme, width, height float32, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	cw, ch := cv.cellSize()
	paddingX := cw * 0.8
	paddingY := ch * 0.35
	margin := cw * 0.8

	maxChars := int((width - margin*2 - paddingX*2) / cw)
	if maxChars <= 3 {
		return
	}
	if ansi.StringWidth(message) > maxChars {
		message = ansi.Truncate(message, maxChars, "...")
	}
	boxW := float32(ansi.StringWidth(message))*cw + paddingX*2
	boxH := ch + paddingY*2

	x := width - boxW - margin
	y := height - boxH - margin
	cv.fill(dock.RectXYWH(x, y, boxW, boxH), withAlpha(th.TabBar, 0.85))
	cv.text(x+paddingX, y+boxH-paddingY, message, th.Foreground)
}
