package tui

import (
	"testing"

	"termloom/surface"
)

func row(t *testing.T, w int, paint func(p *surface.Painter)) string {
	t.Helper()
	s := surface.New(w, 1)
	paint(surface.NewPainter(s))
	return string(s.Dump())
}

func TestInputFieldGolden(t *testing.T) {
	got := row(t, 10, func(p *surface.Painter) {
		InputField(p, 0, "<", "hi", 1, surface.Style{})
	})
	if got != "< h|i     \n" {
		t.Errorf("InputField = %q, want %q", got, "< h|i     \n")
	}
}

func TestInputFieldCursorBounds(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		want   string
	}{
		{"At start", 0, "< |hi     \n"},
		{"At end", 2, "< hi|     \n"},
		{"Past end clamps", 9, "< hi|     \n"},
		{"Negative clamps", -1, "< |hi     \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := row(t, 10, func(p *surface.Painter) {
				InputField(p, 0, "<", "hi", tt.cursor, surface.Style{})
			})
			if got != tt.want {
				t.Errorf("InputField = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressGolden(t *testing.T) {
	got := row(t, 12, func(p *surface.Painter) {
		Progress(p, 0, "P:", 0.25, surface.Style{})
	})
	if got != "P: ==-------\n" {
		t.Errorf("Progress = %q, want %q", got, "P: ==-------\n")
	}
}

func TestProgressExtremes(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"Empty", 0, "P: ---------\n"},
		{"Full", 1, "P: =========\n"},
		{"Clamped high", 1.5, "P: =========\n"},
		{"Clamped low", -0.5, "P: ---------\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := row(t, 12, func(p *surface.Painter) {
				Progress(p, 0, "P:", tt.value, surface.Style{})
			})
			if got != tt.want {
				t.Errorf("Progress(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSparklineGolden(t *testing.T) {
	got := row(t, 3, func(p *surface.Painter) {
		Sparkline(p, 0, []float64{0.0, 0.5, 1.0}, surface.Style{})
	})
	if got != "▁▅█\n" {
		t.Errorf("Sparkline = %q, want %q", got, "▁▅█\n")
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	got := row(t, 3, func(p *surface.Painter) {
		Sparkline(p, 0, []float64{2, 2, 2}, surface.Style{})
	})
	if got != "▁▁▁\n" {
		t.Errorf("Flat sparkline = %q, want lowest glyphs", got)
	}
}

func TestSparklineWindowsRecentValues(t *testing.T) {
	values := []float64{9, 9, 9, 0, 0.5, 1}
	got := row(t, 3, func(p *surface.Painter) {
		SparklineRange(p, 0, values, 0, 1, surface.Style{})
	})
	if got != "▁▅█\n" {
		t.Errorf("Windowed sparkline = %q, want last three values", got)
	}
}

func TestSparklineEmpty(t *testing.T) {
	got := row(t, 3, func(p *surface.Painter) {
		Sparkline(p, 0, nil, surface.Style{})
	})
	if got != "   \n" {
		t.Errorf("Empty sparkline painted: %q", got)
	}
}

func TestTextClips(t *testing.T) {
	got := row(t, 4, func(p *surface.Painter) {
		Text(p, 0, 0, "overflowing", surface.Style{})
	})
	if got != "over\n" {
		t.Errorf("Text = %q, want clipped to width", got)
	}
}

func TestWidgetsInsideSub(t *testing.T) {
	s := surface.New(14, 3)
	p := surface.NewPainter(s)
	Progress(p.Sub(1, 1, 12, 1), 0, "P:", 0.25, surface.Style{})

	want := "              \n P: ==------- \n              \n"
	if got := string(s.Dump()); got != want {
		t.Errorf("Sub-painter widget:\ngot  %q\nwant %q", got, want)
	}
}
