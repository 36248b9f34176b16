package tui

import "termloom/surface"

// SparklineChars provides 8-level vertical resolution
var SparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Progress bar characters
const (
	progressFull  = '='
	progressEmpty = '-'
)

// Text writes a string at (x, y), clipped to the painter
func Text(p *surface.Painter, x, y int, s string, st surface.Style) int {
	return p.PutString(x, y, s, st)
}

// InputField renders a one-line input: label, a space, then the text
// with a '|' cursor marker inserted at the cursor's rune index. The row
// is padded with spaces to the painter's full width.
func InputField(p *surface.Painter, y int, label, text string, cursor int, st surface.Style) {
	w, _ := p.Size()
	if w <= 0 {
		return
	}

	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	x := p.PutString(0, y, label, st)
	p.PutChar(x, y, ' ', st)
	x++
	x += p.PutString(x, y, string(runes[:cursor]), st)
	p.PutChar(x, y, '|', st)
	x++
	x += p.PutString(x, y, string(runes[cursor:]), st)

	for ; x < w; x++ {
		p.PutChar(x, y, ' ', st)
	}
}

// Progress renders a labeled horizontal bar: label, a space, then the
// remaining width filled proportionally with '=' over '-'
func Progress(p *surface.Painter, y int, label string, value float64, st surface.Style) {
	w, _ := p.Size()
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	x := p.PutString(0, y, label, st)
	p.PutChar(x, y, ' ', st)
	x++

	barW := w - x
	if barW <= 0 {
		return
	}
	filled := int(float64(barW) * value)
	for i := 0; i < barW; i++ {
		ch := rune(progressEmpty)
		if i < filled {
			ch = progressFull
		}
		p.PutChar(x+i, y, ch, st)
	}
}

// Sparkline maps values onto 8-level block glyphs, low to high. Bounds
// auto-scale to the data unless min/max are given; a flat series renders
// at the lowest level. Values beyond the painter's width keep the most
// recent window.
func Sparkline(p *surface.Painter, y int, values []float64, st surface.Style) {
	SparklineRange(p, y, values, 0, 0, st)
}

// SparklineRange is Sparkline with explicit bounds (min == max == 0
// auto-scales)
func SparklineRange(p *surface.Painter, y int, values []float64, min, max float64, st surface.Style) {
	w, _ := p.Size()
	if w <= 0 || len(values) == 0 {
		return
	}

	if min == 0 && max == 0 {
		min, max = values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	sampled := values
	if len(sampled) > w {
		sampled = sampled[len(sampled)-w:]
	}

	for i, v := range sampled {
		norm := (v - min) / span
		if norm < 0 {
			norm = 0
		}
		if norm > 1 {
			norm = 1
		}
		idx := int(norm*float64(len(SparklineChars)-1) + 0.5)
		if idx >= len(SparklineChars) {
			idx = len(SparklineChars) - 1
		}
		p.PutChar(i, y, SparklineChars[idx], st)
	}
}
