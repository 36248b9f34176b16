package surface

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMode selects how string width is measured
type WidthMode uint8

const (
	// WidthWCWidth measures per rune (wcwidth semantics)
	WidthWCWidth WidthMode = iota
	// WidthGrapheme measures per grapheme cluster, so combining marks and
	// ZWJ emoji count as the width of their cluster
	WidthGrapheme
)

// Painter is a bounded write API into a Surface. All coordinates are
// relative to the painter's clip rectangle; writes outside the rectangle
// are silently dropped, since drawing past a widget's allotment is a
// normal outcome of layout.
type Painter struct {
	dst        *Surface
	x0, y0     int
	w, h       int
	Widths     WidthMode
}

// NewPainter returns a painter covering the whole surface
func NewPainter(dst *Surface) *Painter {
	return &Painter{dst: dst, w: dst.W, h: dst.H}
}

// Size returns the painter's clip dimensions
func (p *Painter) Size() (w, h int) {
	return p.w, p.h
}

// Sub returns a nested painter clipped to the parent's rectangle
func (p *Painter) Sub(x, y, w, h int) *Painter {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > p.w {
		w = p.w - x
	}
	if y+h > p.h {
		h = p.h - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Painter{
		dst:    p.dst,
		x0:     p.x0 + x,
		y0:     p.y0 + y,
		w:      w,
		h:      h,
		Widths: p.Widths,
	}
}

// PutChar writes one codepoint at (x, y). Wide runes occupy two columns;
// a wide rune at the last column is dropped rather than split.
func (p *Painter) PutChar(x, y int, r rune, st Style) {
	if uint(x) >= uint(p.w) || uint(y) >= uint(p.h) {
		return
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		// Combining mark: attach to the cell to the left
		p.combine(x-1, y, r)
		return
	}
	if w == 2 && x == p.w-1 {
		return
	}
	p.dst.Set(p.x0+x, p.y0+y, Cell{Rune: r, Width: int8(w), Style: st})
}

// PutString writes a string starting at (x, y), clipped to the painter.
// Returns the number of columns advanced. Grapheme clusters stay in one
// cell with trailing runes stored as combining marks.
func (p *Painter) PutString(x, y int, s string, st Style) int {
	if uint(y) >= uint(p.h) {
		return 0
	}
	advance := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		w := p.clusterWidth(g.Str(), runes)
		cx := x + advance
		if cx >= p.w {
			break
		}
		if cx >= 0 && w > 0 {
			if w == 2 && cx == p.w-1 {
				break
			}
			cell := Cell{Rune: runes[0], Width: int8(w), Style: st}
			if len(runes) > 1 {
				cell.Combining = append([]rune(nil), runes[1:]...)
			}
			p.dst.Set(p.x0+cx, p.y0+y, cell)
		}
		advance += w
	}
	return advance
}

// Fill fills a rectangle with copies of the given cell
func (p *Painter) Fill(x, y, w, h int, c Cell) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if uint(x+dx) >= uint(p.w) || uint(y+dy) >= uint(p.h) {
				continue
			}
			p.dst.Set(p.x0+x+dx, p.y0+y+dy, c)
		}
	}
}

// Measure returns the display width of s under the painter's width mode
func (p *Painter) Measure(s string) int {
	if p.Widths == WidthGrapheme {
		return uniseg.StringWidth(s)
	}
	return runewidth.StringWidth(s)
}

// clusterWidth resolves one grapheme cluster's column count
func (p *Painter) clusterWidth(str string, runes []rune) int {
	if p.Widths == WidthGrapheme {
		return uniseg.StringWidth(str)
	}
	w := runewidth.RuneWidth(runes[0])
	if w > 2 {
		w = 2
	}
	return w
}

// combine appends a combining mark onto an existing cell
func (p *Painter) combine(x, y int, r rune) {
	if uint(x) >= uint(p.w) || uint(y) >= uint(p.h) {
		return
	}
	c := p.dst.Get(p.x0+x, p.y0+y)
	if c.IsContinuation() {
		return
	}
	c.Combining = append(c.Combining, r)
	p.dst.Set(p.x0+x, p.y0+y, c)
}
