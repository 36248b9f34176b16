// Package term owns the output channel and terminal mode state. It turns
// the render pipeline's spans and rects into cursor-addressed escape
// traffic and guarantees that every mode it enables is disabled again on
// the way out, on every exit path.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	xterm "golang.org/x/term"

	"termloom/render"
	"termloom/surface"
	"termloom/termcap"
)

var (
	// ErrNotTerminal is returned by Open when no writer was injected and
	// stdout is not a tty
	ErrNotTerminal = errors.New("term: output is not a terminal")

	// ErrClosed is returned by operations on a deinitialized session
	ErrClosed = errors.New("term: session closed")
)

const outBufSize = 65536

// Options configures a Terminal session. The zero value is a bare
// session: no alt screen, no modes, output to stdout.
type Options struct {
	// Width/Height of the render surface; 0 queries the tty (80x24 when
	// that fails)
	Width, Height int

	// Writer receives all escape traffic. Nil means stdout, which must
	// then be a terminal. Injected writers skip the tty check, which is
	// how tests present into a bytes.Buffer.
	Writer io.Writer

	// Caps overrides detection. Nil runs termcap.Detect once.
	Caps *termcap.TermCaps

	// Modes, each applied only when the option is set and the terminal
	// is capable
	AltScreen      bool
	HideCursor     bool
	Mouse          bool
	BracketedPaste bool
	FocusEvents    bool
	SyncOutput     bool

	// Presentation knobs
	Coalesce bool // merge aligned spans into rects before apply
	Batch    bool // one write per frame instead of one per unit

	// RawMode puts stdin into raw mode for the session's lifetime
	RawMode bool
}

// DefaultOptions is the full-screen application setup
func DefaultOptions() Options {
	return Options{
		AltScreen:  true,
		HideCursor: true,
		SyncOutput: true,
		Coalesce:   true,
		Batch:      true,
		RawMode:    true,
	}
}

// mode pairs an enable sequence with its exact inverse
type mode struct {
	on, off []byte
}

// Terminal is one rendering session against one output channel.
// Exclusive ownership: at most one active session per channel, and no
// concurrent use of a session beyond what the internal mutex serializes.
type Terminal struct {
	mu sync.Mutex

	out io.Writer
	w   *bufio.Writer

	mem      *render.Memory
	caps     termcap.TermCaps
	strategy termcap.RenderStrategy
	style    styleWriter
	opts     Options

	applied  []mode
	rawState *xterm.State
	closed   bool
}

// Open creates a session, sizes the surfaces, and applies the requested
// terminal modes in order: alt screen, cursor hide, mouse, bracketed
// paste, focus events. Auto-wrap is always disabled while the session is
// active so bottom-right writes cannot scroll.
func Open(opts Options) (*Terminal, error) {
	out := opts.Writer
	if out == nil {
		if !xterm.IsTerminal(int(os.Stdout.Fd())) {
			return nil, ErrNotTerminal
		}
		out = os.Stdout
	}

	var caps termcap.TermCaps
	if opts.Caps != nil {
		caps = *opts.Caps
	} else {
		caps = termcap.Detect()
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		fw, fh := outputSize(out)
		if w <= 0 {
			w = fw
		}
		if h <= 0 {
			h = fh
		}
	}

	strategy := termcap.Select(caps)
	t := &Terminal{
		out:      out,
		w:        bufio.NewWriterSize(out, outBufSize),
		mem:      render.NewMemory(w, h),
		caps:     caps,
		strategy: strategy,
		style:    styleWriter{depth: depthFor(strategy), hyperlinks: caps.Hyperlinks},
		opts:     opts,
	}
	t.mem.Widths = caps.Widths

	if opts.RawMode && xterm.IsTerminal(int(os.Stdin.Fd())) {
		state, err := xterm.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return nil, fmt.Errorf("term: raw mode: %w", err)
		}
		t.rawState = state
	}

	t.enable(mode{csiAutoWrapOff, csiAutoWrapOn}, true)
	t.enable(mode{csiAltScreenEnter, csiAltScreenExit}, opts.AltScreen)
	t.enable(mode{csiCursorHide, csiCursorShow}, opts.HideCursor)
	t.enable(mode{csiMouseOn, csiMouseOff}, opts.Mouse && caps.MouseSGR)
	t.enable(mode{csiBracketedPasteOn, csiBracketedPasteOff}, opts.BracketedPaste && caps.BracketedPaste)
	t.enable(mode{csiFocusOn, csiFocusOff}, opts.FocusEvents && caps.FocusEvents)

	if err := t.w.Flush(); err != nil {
		t.Deinit()
		return nil, fmt.Errorf("term: init: %w", err)
	}
	return t, nil
}

// enable applies one mode and records it for teardown
func (t *Terminal) enable(m mode, wanted bool) {
	if !wanted {
		return
	}
	t.w.Write(m.on)
	t.applied = append(t.applied, m)
}

// Deinit disables every applied mode in reverse order, resets
// attributes, restores raw mode, and flushes. Every step is attempted
// even when an earlier one fails; safe to call more than once. The mode
// disables are the last escape bytes the session writes.
func (t *Terminal) Deinit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	t.style.close(t.w)
	for i := len(t.applied) - 1; i >= 0; i-- {
		t.w.Write(t.applied[i].off)
	}
	t.applied = nil

	err := t.w.Flush()

	if t.rawState != nil {
		if rerr := xterm.Restore(int(os.Stdin.Fd()), t.rawState); rerr != nil && err == nil {
			err = rerr
		}
		t.rawState = nil
	}
	if err != nil {
		return fmt.Errorf("term: deinit: %w", err)
	}
	return nil
}

// Size returns the render surface dimensions
func (t *Terminal) Size() (w, h int) {
	return t.mem.Size()
}

// Caps returns the session's capability set
func (t *Terminal) Caps() termcap.TermCaps {
	return t.caps
}

// Strategy returns the selected rendering tier
func (t *Terminal) Strategy() termcap.RenderStrategy {
	return t.strategy
}

// SetWriter redirects output, flushing anything pending to the old
// writer first. Primarily for deterministic testing against an
// in-memory sink.
func (t *Terminal) SetWriter(w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.w.Flush()
	t.out = w
	t.w = bufio.NewWriterSize(w, outBufSize)
	t.style.reset()
	return err
}

// RenderWith runs one frame: paint the back buffer, diff, optionally
// coalesce, emit escape traffic for the changed regions, swap. Returns
// the changed spans.
//
// A paint error aborts before any emission and before the swap. A write
// error is propagated and the front buffer is invalidated, so retrying
// the pass repaints and re-emits the full frame; the caller decides
// between retrying and abandoning the session.
func (t *Terminal) RenderWith(paint render.PaintFunc) ([]render.Span, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClosed
	}

	spans, err := t.mem.RenderWith(paint)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return spans, nil
	}
	if err := t.present(spans); err != nil {
		// The frame never reached the channel, but the swap already made
		// it front. Drop the buffered bytes (and bufio's sticky error)
		// and poison the front buffer so a retried pass re-emits every
		// cell instead of diffing to nothing.
		t.w.Reset(t.out)
		t.style.reset()
		t.mem.Invalidate()
		return spans, err
	}
	return spans, nil
}

// present emits the escape traffic for one frame's changed regions,
// reading cell content from the new front buffer
func (t *Terminal) present(spans []render.Span) error {
	front := t.mem.Front()

	synced := t.opts.SyncOutput && t.caps.SyncOutput
	if synced {
		t.w.Write(csiSyncBegin)
	}

	var units []render.Rect
	if t.opts.Coalesce {
		units = render.Coalesce(spans)
	} else {
		units = make([]render.Rect, len(spans))
		for i, sp := range spans {
			units[i] = render.Rect{X: sp.Col, Y: sp.Row, W: sp.Len, H: 1}
		}
	}

	t.style.reset()
	for _, u := range units {
		for y := u.Y; y < u.Y+u.H; y++ {
			row := front.Row(y)
			if row == nil {
				continue
			}
			writeCursorPos(t.w, u.X, y)
			end := u.X + u.W
			if end > front.W {
				end = front.W
			}
			for x := u.X; x < end; x++ {
				t.writeCell(row[x])
			}
		}
		if !t.opts.Batch {
			if err := t.w.Flush(); err != nil {
				return fmt.Errorf("term: present: %w", err)
			}
		}
	}
	t.style.close(t.w)

	if synced {
		t.w.Write(csiSyncEnd)
	}
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("term: present: %w", err)
	}
	return nil
}

// writeCell emits one cell's style delta and glyph bytes. Continuation
// slots emit nothing; their wide head covers both columns.
func (t *Terminal) writeCell(c surface.Cell) {
	if c.IsContinuation() {
		return
	}
	t.style.write(t.w, c.Style)

	r := c.Rune
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		t.w.WriteByte(byte(r))
	} else {
		t.w.WriteRune(r)
	}
	for _, cm := range c.Combining {
		t.w.WriteRune(cm)
	}
}

// Clear wipes the screen and invalidates the front buffer so the next
// frame repaints everything
func (t *Terminal) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	t.w.Write(csiSGR0)
	t.w.Write(csiClear)
	t.style.reset()
	t.mem.Invalidate()
	return t.w.Flush()
}

// Invalidate forces the next frame to repaint every cell without
// clearing the screen first
func (t *Terminal) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mem.Invalidate()
}

// Resize reallocates the render surfaces. The next frame repaints fully.
func (t *Terminal) Resize(w, h int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mem.Resize(w, h)
}

// MoveCursor positions the cursor, clamped to the surface
func (t *Terminal) MoveCursor(x, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	w, h := t.mem.Size()
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if w > 0 && x >= w {
		x = w - 1
	}
	if h > 0 && y >= h {
		y = h - 1
	}
	writeCursorPos(t.w, x, y)
	return t.w.Flush()
}

// SetCursorVisible shows or hides the cursor
func (t *Terminal) SetCursorVisible(visible bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if visible {
		t.w.Write(csiCursorShow)
	} else {
		t.w.Write(csiCursorHide)
	}
	return t.w.Flush()
}

// EmergencyReset writes the full restore set to w. For panic paths where
// Deinit cannot run; also attempts a best-effort termios reset.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiBracketedPasteOff)
	w.Write(csiFocusOff)
	w.Write(csiSyncEnd)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)
	w.Write(csiRIS)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	resetTerminalMode()
}

// outputSize queries the tty size when out is a file, with an 80x24
// fallback
func outputSize(out io.Writer) (int, int) {
	if f, ok := out.(*os.File); ok {
		if w, h := terminalSize(int(f.Fd())); w > 0 && h > 0 {
			return w, h
		}
	}
	return 80, 24
}
