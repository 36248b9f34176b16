// Package render holds the frame pipeline's pure middle: the double
// buffer, the cell diff engine, and the span-to-rectangle coalescer.
// Nothing here performs I/O.
package render

import "termloom/surface"

// Span is a maximal contiguous run of cells on one row that differ
// between two surfaces
type Span struct {
	Row, Col, Len int
}

// Rect is a coalesced region covering spans that share a column range
// across consecutive rows
type Rect struct {
	X, Y, W, H int
}

// DiffSurface compares two surfaces cell by cell and returns the changed
// row spans, sorted by row then column, non-overlapping. One pass,
// O(width*height).
//
// If dimensions differ (mid-resize), every cell of next is reported.
func DiffSurface(next, prev *surface.Surface) []Span {
	if next.W != prev.W || next.H != prev.H {
		spans := make([]Span, 0, next.H)
		for y := 0; y < next.H; y++ {
			if next.W > 0 {
				spans = append(spans, Span{Row: y, Col: 0, Len: next.W})
			}
		}
		return spans
	}

	var spans []Span
	for y := 0; y < next.H; y++ {
		nrow := next.Row(y)
		prow := prev.Row(y)

		x := 0
		for x < next.W {
			if nrow[x].Equal(prow[x]) {
				x++
				continue
			}

			start := x
			for x < next.W && !nrow[x].Equal(prow[x]) {
				x++
			}
			end := x

			// A wide glyph changes as a unit: pull in the head when the
			// run starts on a continuation slot, and the continuation
			// when the run ends on a head.
			if start > 0 && (nrow[start].IsContinuation() || prow[start].IsContinuation()) {
				start--
			}
			if end < next.W && (nrow[end].IsContinuation() || prow[end].IsContinuation()) {
				end++
				x = end
			}

			// Merge with the previous span if widening made them touch
			if n := len(spans); n > 0 && spans[n-1].Row == y && spans[n-1].Col+spans[n-1].Len >= start {
				spans[n-1].Len = end - spans[n-1].Col
				continue
			}
			spans = append(spans, Span{Row: y, Col: start, Len: end - start})
		}
	}
	return spans
}
