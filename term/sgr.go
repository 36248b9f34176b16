package term

import (
	"bufio"

	"termloom/surface"
	"termloom/termcap"
)

// colorDepth is the palette the emitter may use
type colorDepth uint8

const (
	depthMono colorDepth = iota
	depth16
	depth256
	depthRGB
)

// depthFor derives the emitter's color depth from the rendering tier
func depthFor(strategy termcap.RenderStrategy) colorDepth {
	switch {
	case strategy >= termcap.StrategyRichTruecolor:
		return depthRGB
	case strategy == termcap.StrategyEnhanced256:
		return depth256
	case strategy == termcap.StrategyBasicANSI16:
		return depth16
	default:
		return depthMono
	}
}

// styleWriter emits SGR/OSC 8 state changes, coalescing runs of cells
// that share a style into a single sequence
type styleWriter struct {
	depth      colorDepth
	hyperlinks bool

	last     surface.Style
	valid    bool
	linkOpen bool
}

// reset invalidates the tracked state, forcing the next cell to emit
// its full style
func (s *styleWriter) reset() {
	s.valid = false
}

// close terminates any open hyperlink and resets attributes
func (s *styleWriter) close(w *bufio.Writer) {
	if s.linkOpen {
		w.Write([]byte("\x1b]8;;"))
		w.Write(oscST)
		s.linkOpen = false
	}
	w.Write(csiSGR0)
	s.valid = false
}

// write brings the terminal's style state to st, emitting as little as
// possible
func (s *styleWriter) write(w *bufio.Writer, st surface.Style) {
	if s.valid && styleEqualVisual(s.last, st) {
		s.writeLink(w, st.Link)
		s.last = st
		return
	}

	attrsChanged := !s.valid ||
		s.last.Attrs != st.Attrs ||
		s.last.Underline != st.Underline ||
		s.last.UnderlineColor != st.UnderlineColor
	fgChanged := !s.valid || s.last.Fg != st.Fg
	bgChanged := !s.valid || s.last.Bg != st.Bg
	if s.depth == depthMono {
		// Colors are never emitted; a color-only change is no change
		fgChanged, bgChanged = false, false
	}

	if attrsChanged {
		// Attribute removal needs a reset, so rebuild the whole sequence
		w.Write(csi)
		w.WriteByte('0')
		s.writeAttrs(w, st)
		s.writeColorParams(w, st.Fg, true)
		s.writeColorParams(w, st.Bg, false)
		s.writeUnderlineColor(w, st)
		w.WriteByte('m')
	} else if fgChanged || bgChanged {
		w.Write(csi)
		first := true
		if fgChanged {
			s.writeColorParamsDelim(w, st.Fg, true, &first)
		}
		if bgChanged {
			s.writeColorParamsDelim(w, st.Bg, false, &first)
		}
		if first {
			// Both colors degraded to no-ops at this depth
			w.WriteByte('0')
		}
		w.WriteByte('m')
	}

	s.writeLink(w, st.Link)
	s.last = st
	s.valid = true
}

// styleEqualVisual compares styles ignoring the hyperlink target, which
// is tracked separately as OSC 8 state
func styleEqualVisual(a, b surface.Style) bool {
	a.Link = ""
	b.Link = ""
	return a == b
}

// writeAttrs appends attribute parameters (after the leading reset)
func (s *styleWriter) writeAttrs(w *bufio.Writer, st surface.Style) {
	if st.Attrs&surface.AttrBold != 0 {
		w.Write([]byte(";1"))
	}
	if st.Attrs&surface.AttrDim != 0 {
		w.Write([]byte(";2"))
	}
	if st.Attrs&surface.AttrItalic != 0 {
		w.Write([]byte(";3"))
	}
	if st.Attrs&surface.AttrBlink != 0 {
		w.Write([]byte(";5"))
	}
	if st.Attrs&surface.AttrReverse != 0 {
		w.Write([]byte(";7"))
	}
	if st.Attrs&surface.AttrStrike != 0 {
		w.Write([]byte(";9"))
	}
	switch st.Underline {
	case surface.UnderlineSingle:
		w.Write([]byte(";4"))
	case surface.UnderlineDouble:
		w.Write([]byte(";4:2"))
	case surface.UnderlineCurly:
		w.Write([]byte(";4:3"))
	}
}

// writeColorParams appends ";<params>" for one color at the current depth
func (s *styleWriter) writeColorParams(w *bufio.Writer, c surface.Color, fg bool) {
	first := false
	s.writeColorParamsDelim(w, c, fg, &first)
}

// writeColorParamsDelim appends color parameters, managing the leading
// separator: *first is true when no parameter has been written yet
func (s *styleWriter) writeColorParamsDelim(w *bufio.Writer, c surface.Color, fg bool, first *bool) {
	if s.depth == depthMono {
		return
	}

	sep := func() {
		if !*first {
			w.WriteByte(';')
		}
		*first = false
	}

	switch c.Kind {
	case surface.ColorDefault:
		sep()
		if fg {
			w.Write([]byte("39"))
		} else {
			w.Write([]byte("49"))
		}

	case surface.ColorANSI:
		sep()
		writeAnsi16(w, c.Index, fg)

	case surface.Color256:
		n := c.Index
		if s.depth < depth256 {
			sep()
			writeAnsi16(w, index256To16(n), fg)
			return
		}
		sep()
		if fg {
			w.Write([]byte("38;5;"))
		} else {
			w.Write([]byte("48;5;"))
		}
		writeInt(w, int(n))

	case surface.ColorRGB:
		switch s.depth {
		case depthRGB:
			sep()
			if fg {
				w.Write([]byte("38;2;"))
			} else {
				w.Write([]byte("48;2;"))
			}
			writeInt(w, int(c.R))
			w.WriteByte(';')
			writeInt(w, int(c.G))
			w.WriteByte(';')
			writeInt(w, int(c.B))
		case depth256:
			sep()
			if fg {
				w.Write([]byte("38;5;"))
			} else {
				w.Write([]byte("48;5;"))
			}
			writeInt(w, int(rgbTo256(c.R, c.G, c.B)))
		case depth16:
			sep()
			writeAnsi16(w, rgbTo16(c.R, c.G, c.B), fg)
		}
	}
}

// writeAnsi16 writes a 16-palette SGR parameter: 30-37/90-97 fg,
// 40-47/100-107 bg
func writeAnsi16(w *bufio.Writer, n uint8, fg bool) {
	n &= 0x0f
	base := 30
	if !fg {
		base = 40
	}
	if n >= 8 {
		base += 60
		n -= 8
	}
	writeInt(w, base+int(n))
}

// writeUnderlineColor appends the 58 parameter when an underline color
// is set
func (s *styleWriter) writeUnderlineColor(w *bufio.Writer, st surface.Style) {
	if st.Underline == surface.UnderlineNone || st.UnderlineColor.Kind == surface.ColorDefault {
		return
	}
	if s.depth == depthMono || s.depth == depth16 {
		return
	}
	c := st.UnderlineColor
	switch {
	case c.Kind == surface.ColorRGB && s.depth == depthRGB:
		w.Write([]byte(";58;2;"))
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
	case c.Kind == surface.ColorRGB:
		w.Write([]byte(";58;5;"))
		writeInt(w, int(rgbTo256(c.R, c.G, c.B)))
	default:
		w.Write([]byte(";58;5;"))
		writeInt(w, int(c.Index))
	}
}

// writeLink brings OSC 8 hyperlink state to target
func (s *styleWriter) writeLink(w *bufio.Writer, target string) {
	if !s.hyperlinks {
		return
	}
	if s.valid && s.last.Link == target {
		return
	}
	if s.linkOpen {
		w.Write([]byte("\x1b]8;;"))
		w.Write(oscST)
		s.linkOpen = false
	}
	if target != "" {
		w.Write([]byte("\x1b]8;;"))
		w.WriteString(target)
		w.Write(oscST)
		s.linkOpen = true
	}
}
