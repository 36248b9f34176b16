package termcap

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"termloom/surface"
)

// Detect probes the environment and returns the session capability set.
//
// Probing is environment-only: COLORTERM/TERM plus terminal-identifying
// variables, with termenv's color profile folded in. Interactive
// device-attribute queries are deliberately not used; they require owning
// the tty's read side and a response timeout, and input is outside this
// core.
func Detect() TermCaps {
	caps := DetectEnv(os.Getenv)

	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		caps.TrueColor = true
		caps.Color256 = true
		caps.Color16 = true
	case termenv.ANSI256:
		caps.Color256 = true
		caps.Color16 = true
	case termenv.ANSI:
		caps.Color16 = true
	}
	return caps
}

// DetectEnv computes capabilities from an environment lookup function.
// Split out from Detect so tests can supply a synthetic environment.
func DetectEnv(getenv func(string) string) TermCaps {
	var caps TermCaps

	term := strings.ToLower(getenv("TERM"))
	if term == "" || term == "dumb" {
		return caps
	}

	// Any real terminal gets the 16-color palette and the cheap modes
	caps.Color16 = true
	caps.BracketedPaste = true
	caps.FocusEvents = true
	caps.MouseSGR = true

	if strings.Contains(term, "256color") {
		caps.Color256 = true
	}

	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" ||
		strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		caps.TrueColor = true
		caps.Color256 = true
	}

	// Terminal-specific feature sets, most capable first
	switch {
	case getenv("KITTY_WINDOW_ID") != "" || strings.Contains(term, "kitty"):
		caps.TrueColor = true
		caps.Color256 = true
		caps.KittyGraphics = true
		caps.Hyperlinks = true
		caps.Clipboard = true
		caps.Notify = true
		caps.SyncOutput = true
		caps.Marks = true
		caps.Widths = surface.WidthGrapheme

	case getenv("WEZTERM_PANE") != "":
		caps.TrueColor = true
		caps.Color256 = true
		caps.KittyGraphics = true
		caps.Sixel = true
		caps.Hyperlinks = true
		caps.Clipboard = true
		caps.Notify = true
		caps.SyncOutput = true
		caps.Marks = true

	case getenv("ITERM_SESSION_ID") != "" || getenv("TERM_PROGRAM") == "iTerm.app":
		caps.TrueColor = true
		caps.Color256 = true
		caps.Sixel = true
		caps.Hyperlinks = true
		caps.Clipboard = true
		caps.Notify = true
		caps.Badge = true
		caps.Marks = true
		caps.SyncOutput = true

	case getenv("GHOSTTY_RESOURCES_DIR") != "" || getenv("TERM_PROGRAM") == "ghostty":
		caps.TrueColor = true
		caps.Color256 = true
		caps.KittyGraphics = true
		caps.Hyperlinks = true
		caps.Clipboard = true
		caps.Notify = true
		caps.SyncOutput = true
		caps.Marks = true
		caps.Widths = surface.WidthGrapheme

	case getenv("ALACRITTY_WINDOW_ID") != "" || getenv("ALACRITTY_LOG") != "":
		caps.TrueColor = true
		caps.Color256 = true
		caps.Hyperlinks = true
		caps.SyncOutput = true

	case getenv("KONSOLE_VERSION") != "":
		caps.TrueColor = true
		caps.Color256 = true
		caps.Hyperlinks = true
		caps.Notify = true

	case getenv("VTE_VERSION") != "":
		caps.TrueColor = true
		caps.Color256 = true
		caps.Hyperlinks = true
		caps.Notify = true

	case strings.Contains(term, "xterm"):
		// Plain xterm: color only, no OSC extensions assumed
	}

	// Multiplexers pass most sequences through but graphics rarely survive
	if getenv("TMUX") != "" || strings.HasPrefix(term, "screen") {
		caps.KittyGraphics = false
		caps.Sixel = false
		caps.SyncOutput = false
	}

	return caps
}
