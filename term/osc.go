package term

import (
	"encoding/base64"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Notify posts a desktop notification via OSC 9. No-op when the terminal
// lacks the capability.
func (t *Terminal) Notify(message string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if !t.caps.Notify {
		return nil
	}
	t.w.Write([]byte("\x1b]9;"))
	t.w.WriteString(message)
	t.w.Write(oscBEL)
	return t.w.Flush()
}

// SetBadge sets the iTerm2 badge: ESC]1337;SetBadgeFormat={base64}BEL.
// An empty format clears the badge.
func (t *Terminal) SetBadge(format string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if !t.caps.Badge {
		return nil
	}
	t.w.Write([]byte("\x1b]1337;SetBadgeFormat="))
	t.w.WriteString(base64.StdEncoding.EncodeToString([]byte(format)))
	t.w.Write(oscBEL)
	return t.w.Flush()
}

// CommandStart emits the FinalTerm command-start marker ESC]133;C;{id}BEL
func (t *Terminal) CommandStart(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if !t.caps.Marks {
		return nil
	}
	t.w.Write([]byte("\x1b]133;C;"))
	t.w.WriteString(id)
	t.w.Write(oscBEL)
	return t.w.Flush()
}

// CommandEnd emits the FinalTerm command-end marker ESC]133;D;{code}BEL
func (t *Terminal) CommandEnd(code int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if !t.caps.Marks {
		return nil
	}
	t.w.Write([]byte("\x1b]133;D;"))
	writeInt(t.w, code)
	t.w.Write(oscBEL)
	return t.w.Flush()
}

// CopyToClipboard places text on the clipboard. OSC 52 reaches the
// terminal's clipboard (which works across SSH); the local system
// clipboard is written as well when available.
func (t *Terminal) CopyToClipboard(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	// Local write is best-effort; remote sessions have no local clipboard
	_ = clipboard.WriteAll(text)

	if !t.caps.Clipboard {
		return nil
	}
	if _, err := osc52.New(text).WriteTo(t.w); err != nil {
		return err
	}
	return t.w.Flush()
}
