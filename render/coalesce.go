package render

// colLen keys rectangles by their column range
type colLen struct {
	col, length int
}

// Coalesce merges spans with identical (column, length) on consecutive
// rows into taller rectangles; everything else becomes a 1-row rect.
// The union of covered cells is exactly the union of the input spans.
//
// Cursor-repositioning sequences dominate write cost for sparse,
// vertically aligned changes (a column of progress bars, a scrollbar),
// and stacking those spans into one rect batches them into one unit.
func Coalesce(spans []Span) []Rect {
	if len(spans) == 0 {
		return nil
	}

	rects := make([]Rect, 0, len(spans))

	// open maps column ranges to the rect still growable at the previous
	// row; rebuilt as the scan crosses each row boundary
	open := make(map[colLen]int)
	next := make(map[colLen]int)
	row := spans[0].Row

	for _, sp := range spans {
		if sp.Len <= 0 {
			continue
		}
		if sp.Row != row {
			if sp.Row == row+1 {
				open, next = next, open
			} else {
				// Gap row: nothing can extend across it
				open = make(map[colLen]int)
			}
			clear(next)
			row = sp.Row
		}

		key := colLen{sp.Col, sp.Len}
		if idx, ok := open[key]; ok && rects[idx].Y+rects[idx].H == sp.Row {
			rects[idx].H++
			next[key] = idx
			continue
		}
		rects = append(rects, Rect{X: sp.Col, Y: sp.Row, W: sp.Len, H: 1})
		next[key] = len(rects) - 1
	}
	return rects
}
