// Package termcap models the feature set of the attached terminal and maps
// it to a rendering fidelity tier. Capabilities are probed once at session
// start and treated as read-only afterwards.
package termcap

import "termloom/surface"

// TermCaps records the escape-sequence families the terminal understands.
// The zero value is a capability-free dumb terminal.
type TermCaps struct {
	// Color depth, cumulative: a truecolor terminal also has the
	// lower-depth palettes available
	TrueColor bool
	Color256  bool
	Color16   bool

	// OSC families
	Hyperlinks bool // OSC 8
	Clipboard  bool // OSC 52
	Notify     bool // OSC 9
	Badge      bool // iTerm2 OSC 1337 SetBadgeFormat
	Marks      bool // FinalTerm OSC 133 command markers

	// Graphics protocols
	KittyGraphics bool
	Sixel         bool

	// Input / frame modes
	BracketedPaste bool
	FocusEvents    bool
	MouseSGR       bool
	SyncOutput     bool // DEC 2026 synchronized output

	// How the renderer measures text width
	Widths surface.WidthMode
}

// Subset reports whether every capability set in c is also set in other.
// Width mode is a measurement preference, not a feature, and is ignored.
func (c TermCaps) Subset(other TermCaps) bool {
	flags := func(t TermCaps) []bool {
		return []bool{
			t.TrueColor, t.Color256, t.Color16,
			t.Hyperlinks, t.Clipboard, t.Notify, t.Badge, t.Marks,
			t.KittyGraphics, t.Sixel,
			t.BracketedPaste, t.FocusEvents, t.MouseSGR, t.SyncOutput,
		}
	}
	a, b := flags(c), flags(other)
	for i := range a {
		if a[i] && !b[i] {
			return false
		}
	}
	return true
}
