package term

import "bufio"

// Pre-allocated escape fragments (avoid allocations during present)
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)

	csiClear = []byte("\x1b[2J\x1b[H")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// DECAWM off prevents scroll/wrap when writing the bottom-right cell
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Synchronized output frame (DEC 2026)
	csiSyncBegin = []byte("\x1b[?2026h")
	csiSyncEnd   = []byte("\x1b[?2026l")

	// SGR mouse reporting, combined enable/disable
	csiMouseOn  = []byte("\x1b[?1000;1002;1003;1006h")
	csiMouseOff = []byte("\x1b[?1000;1002;1003;1006l")

	csiBracketedPasteOn  = []byte("\x1b[?2004h")
	csiBracketedPasteOff = []byte("\x1b[?2004l")

	csiFocusOn  = []byte("\x1b[?1004h")
	csiFocusOff = []byte("\x1b[?1004l")

	// OSC terminators
	oscBEL = []byte("\a")
	oscST  = []byte("\x1b\\")
)

// writeInt writes a non-negative integer without allocation.
// Terminal values are 0-255 common, 0-999 typical max.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes CUP for 0-indexed (x, y): ESC[{y+1};{x+1}H
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
