package render

import "termloom/surface"

// PaintFunc describes the next frame by drawing into a bounded painter
type PaintFunc func(*surface.Painter) error

// Memory owns the front/back surface pair. Front is the last presented
// frame; back is scratch for the frame being painted. Exactly one Memory
// instance owns a pair; no concurrent use.
type Memory struct {
	front *surface.Surface
	back  *surface.Surface

	// Width measurement mode handed to every painter
	Widths surface.WidthMode
}

// NewMemory creates a double buffer of the given dimensions
func NewMemory(w, h int) *Memory {
	return &Memory{
		front: surface.New(w, h),
		back:  surface.New(w, h),
	}
}

// Size returns the buffer dimensions
func (m *Memory) Size() (w, h int) {
	return m.front.W, m.front.H
}

// Front returns the last successfully painted frame. Read-only for
// callers; presentation reads cell bytes from it.
func (m *Memory) Front() *surface.Surface {
	return m.front
}

// RenderWith clears the back buffer, hands a painter to paint, diffs the
// result against the front buffer and swaps. Returns the changed spans.
//
// If paint fails the swap does not happen: the previous front stays
// authoritative and the error propagates with no spans.
func (m *Memory) RenderWith(paint PaintFunc) ([]Span, error) {
	m.back.Clear(surface.Blank)

	p := surface.NewPainter(m.back)
	p.Widths = m.Widths
	if err := paint(p); err != nil {
		return nil, err
	}

	spans := DiffSurface(m.back, m.front)
	m.front, m.back = m.back, m.front
	return spans, nil
}

// Resize reallocates both buffers and forces the next diff to cover
// every cell
func (m *Memory) Resize(w, h int) {
	m.front.Resize(w, h)
	m.back.Resize(w, h)
	m.Invalidate()
}

// Invalidate poisons the front buffer so the next RenderWith repaints
// everything (rune 0 never equals a painted cell)
func (m *Memory) Invalidate() {
	m.front.Clear(surface.Cell{Rune: 0, Width: 1})
}
