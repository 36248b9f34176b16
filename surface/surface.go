package surface

import "bytes"

// Surface is a fixed-size 2D grid of cells. Cells are row-major:
// cells[y*W + x]. All accessors bounds-check; out-of-range reads return
// the zero Cell and out-of-range writes are dropped.
type Surface struct {
	W, H  int
	cells []Cell
}

// New creates a surface filled with Blank cells
func New(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &Surface{W: w, H: h, cells: make([]Cell, w*h)}
	s.Clear(Blank)
	return s
}

// Get returns the cell at (x, y), or the zero Cell if out of bounds
func (s *Surface) Get(x, y int) Cell {
	if uint(x) >= uint(s.W) || uint(y) >= uint(s.H) {
		return Cell{}
	}
	return s.cells[y*s.W+x]
}

// Set writes a cell at (x, y) and returns the previous cell.
// Out-of-bounds writes are a no-op returning the zero Cell.
//
// Wide-cell bookkeeping: writing a width-2 cell reserves the following
// column as a continuation slot; overwriting either half of an existing
// wide glyph blanks the orphaned half so no half-glyph survives.
func (s *Surface) Set(x, y int, c Cell) Cell {
	if uint(x) >= uint(s.W) || uint(y) >= uint(s.H) {
		return Cell{}
	}
	idx := y*s.W + x
	prev := s.cells[idx]

	// A wide glyph that would hang off the right edge degrades to blank
	if c.Width == 2 && x == s.W-1 {
		c = Blank
	}

	// Repair neighbors of the glyph being displaced
	if prev.Width == 2 && x+1 < s.W {
		s.cells[idx+1] = Blank
	}
	if prev.IsContinuation() && x > 0 && s.cells[idx-1].Width == 2 {
		s.cells[idx-1] = Blank
	}

	s.cells[idx] = c
	if c.Width == 2 {
		next := s.cells[idx+1]
		if next.Width == 2 && x+2 < s.W {
			s.cells[idx+2] = Blank
		}
		s.cells[idx+1] = continuation
	}
	return prev
}

// Clear fills the whole surface with the given cell
func (s *Surface) Clear(fill Cell) {
	for i := range s.cells {
		s.cells[i] = fill
	}
}

// Resize reallocates the grid to the new dimensions and clears it
func (s *Surface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	size := w * h
	if cap(s.cells) < size {
		s.cells = make([]Cell, size)
	} else {
		s.cells = s.cells[:size]
	}
	s.W = w
	s.H = h
	s.Clear(Blank)
}

// Row returns the cell slice for one row, or nil if out of range.
// The slice aliases the surface; callers must not resize it.
func (s *Surface) Row(y int) []Cell {
	if uint(y) >= uint(s.H) {
		return nil
	}
	return s.cells[y*s.W : (y+1)*s.W]
}

// Dump renders the surface as UTF-8 bytes, row-major with one newline
// appended per row. Continuation slots emit nothing (the wide glyph to
// their left already covers their column).
func (s *Surface) Dump() []byte {
	var buf bytes.Buffer
	buf.Grow(s.W*s.H + s.H)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := s.cells[y*s.W+x]
			if c.IsContinuation() {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			buf.WriteRune(r)
			for _, cm := range c.Combining {
				buf.WriteRune(cm)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
