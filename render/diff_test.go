package render

import (
	"testing"

	"termloom/surface"
)

func put(s *surface.Surface, x, y int, r rune) {
	s.Set(x, y, surface.Cell{Rune: r, Width: 1})
}

func TestDiffIdentical(t *testing.T) {
	a := surface.New(8, 4)
	if spans := DiffSurface(a, a); len(spans) != 0 {
		t.Errorf("diff(S, S) yielded %d spans, want 0", len(spans))
	}

	b := surface.New(8, 4)
	put(a, 3, 2, 'x')
	put(b, 3, 2, 'x')
	if spans := DiffSurface(a, b); len(spans) != 0 {
		t.Errorf("Equal surfaces yielded %d spans, want 0", len(spans))
	}
}

func TestDiffSingleCell(t *testing.T) {
	old := surface.New(8, 4)
	next := surface.New(8, 4)
	put(next, 3, 2, 'x')

	spans := DiffSurface(next, old)
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	want := Span{Row: 2, Col: 3, Len: 1}
	if spans[0] != want {
		t.Errorf("Span = %+v, want %+v", spans[0], want)
	}
}

func TestDiffWideCell(t *testing.T) {
	old := surface.New(8, 1)
	next := surface.New(8, 1)
	next.Set(3, 0, surface.Cell{Rune: '世', Width: 2})

	spans := DiffSurface(next, old)
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	want := Span{Row: 0, Col: 3, Len: 2}
	if spans[0] != want {
		t.Errorf("Wide glyph span = %+v, want %+v (head plus continuation)", spans[0], want)
	}
}

func TestDiffWideCellReplacedByNarrow(t *testing.T) {
	old := surface.New(8, 1)
	old.Set(3, 0, surface.Cell{Rune: '世', Width: 2})
	next := surface.New(8, 1)
	put(next, 3, 0, 'a')
	put(next, 4, 0, 'b')

	spans := DiffSurface(next, old)
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d: %+v", len(spans), spans)
	}
	if spans[0].Col != 3 || spans[0].Len != 2 {
		t.Errorf("Expected span covering both old wide columns, got %+v", spans[0])
	}
}

func TestDiffMultipleRuns(t *testing.T) {
	old := surface.New(10, 2)
	next := surface.New(10, 2)
	put(next, 0, 0, 'a')
	put(next, 1, 0, 'b')
	put(next, 5, 0, 'c')
	put(next, 9, 1, 'd')

	spans := DiffSurface(next, old)
	want := []Span{
		{Row: 0, Col: 0, Len: 2},
		{Row: 0, Col: 5, Len: 1},
		{Row: 1, Col: 9, Len: 1},
	}
	if len(spans) != len(want) {
		t.Fatalf("Expected %d spans, got %d: %+v", len(want), len(spans), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("Span %d = %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestDiffSpansSortedNonOverlapping(t *testing.T) {
	old := surface.New(16, 8)
	next := surface.New(16, 8)
	for y := 0; y < 8; y += 2 {
		for x := y % 4; x < 16; x += 3 {
			put(next, x, y, rune('a'+x%26))
		}
	}

	spans := DiffSurface(next, old)
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.Row < prev.Row {
			t.Fatalf("Spans not sorted by row: %+v before %+v", prev, cur)
		}
		if cur.Row == prev.Row && cur.Col < prev.Col+prev.Len {
			t.Fatalf("Spans overlap or unsorted on row %d: %+v then %+v", cur.Row, prev, cur)
		}
	}
}

func TestDiffStyleOnlyChange(t *testing.T) {
	old := surface.New(4, 1)
	next := surface.New(4, 1)
	st := surface.Style{Fg: surface.RGB(255, 0, 0)}
	put(old, 1, 0, 'x')
	next.Set(1, 0, surface.Cell{Rune: 'x', Width: 1, Style: st})

	spans := DiffSurface(next, old)
	if len(spans) != 1 || spans[0].Len != 1 {
		t.Errorf("Style-only change must diff: got %+v", spans)
	}
}

func TestDiffDimensionMismatch(t *testing.T) {
	old := surface.New(4, 2)
	next := surface.New(6, 3)

	spans := DiffSurface(next, old)
	if len(spans) != 3 {
		t.Fatalf("Expected full-row spans on mismatch, got %+v", spans)
	}
	for y, sp := range spans {
		if sp.Row != y || sp.Col != 0 || sp.Len != 6 {
			t.Errorf("Row %d span = %+v", y, sp)
		}
	}
}
