package surface

// ColorKind selects how a Color value is interpreted
type ColorKind uint8

const (
	ColorDefault ColorKind = iota // terminal default fg/bg
	ColorANSI                     // Index is a 0-15 palette entry
	Color256                      // Index is a 0-255 palette entry
	ColorRGB                      // R/G/B are 24-bit channels
)

// Color is a terminal color in one of four encodings
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// RGB constructs a truecolor value
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Indexed constructs a 256-palette color
func Indexed(n uint8) Color {
	return Color{Kind: Color256, Index: n}
}

// ANSI constructs a 16-palette color (n is masked to 0-15)
func ANSI(n uint8) Color {
	return Color{Kind: ColorANSI, Index: n & 0x0f}
}

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << 0
	AttrDim     Attr = 1 << 1
	AttrItalic  Attr = 1 << 2
	AttrBlink   Attr = 1 << 3
	AttrReverse Attr = 1 << 4
	AttrStrike  Attr = 1 << 5
)

// Underline selects the underline variant
type Underline uint8

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
)

// Style is the full visual state of a cell
type Style struct {
	Fg, Bg         Color
	Attrs          Attr
	Underline      Underline
	UnderlineColor Color // only meaningful when Underline != UnderlineNone
	Link           string // OSC 8 hyperlink target, empty = none
}

// Cell is one terminal character position.
// Width 0 marks the continuation slot behind a width-2 glyph; continuation
// cells are never independently addressed and carry no glyph of their own.
type Cell struct {
	Rune      rune
	Width     int8
	Combining []rune
	Style     Style
}

// Blank is the cell a cleared surface is filled with
var Blank = Cell{Rune: ' ', Width: 1}

// continuation reserves the trailing column of a wide glyph
var continuation = Cell{Rune: 0, Width: 0}

// IsContinuation reports whether the cell is a wide-glyph continuation slot
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal compares two cells by full content: rune, width, combining marks
// and style including colors and hyperlink target
func (c Cell) Equal(other Cell) bool {
	if c.Rune != other.Rune || c.Width != other.Width {
		return false
	}
	if c.Style != other.Style {
		return false
	}
	if len(c.Combining) != len(other.Combining) {
		return false
	}
	for i, r := range c.Combining {
		if other.Combining[i] != r {
			return false
		}
	}
	return true
}
