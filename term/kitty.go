package term

import "encoding/base64"

// Kitty graphics pixel formats
const (
	KittyFormatRGB  = 24
	KittyFormatRGBA = 32
	KittyFormatPNG  = 100
)

// TransmitImage sends pixel data over the Kitty graphics protocol:
// ESC_G f={format},i={id},s={w},v={h} ; {base64} ESC\ (single chunk).
// No-op when the terminal lacks the protocol.
func (t *Terminal) TransmitImage(id, format, width, height int, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if !t.caps.KittyGraphics {
		return nil
	}

	t.w.Write([]byte("\x1b_Gf="))
	writeInt(t.w, format)
	t.w.Write([]byte(",i="))
	writeInt(t.w, id)
	t.w.Write([]byte(",s="))
	writeInt(t.w, width)
	t.w.Write([]byte(",v="))
	writeInt(t.w, height)
	t.w.WriteByte(';')
	t.w.WriteString(base64.StdEncoding.EncodeToString(data))
	t.w.Write(oscST)
	return t.w.Flush()
}
