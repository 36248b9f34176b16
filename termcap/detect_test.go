package termcap

import "testing"

func envLookup(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestDetectEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, caps TermCaps)
	}{
		{
			name: "Dumb terminal",
			env:  map[string]string{"TERM": "dumb"},
			check: func(t *testing.T, caps TermCaps) {
				if caps != (TermCaps{}) {
					t.Errorf("Expected empty caps for dumb terminal, got %+v", caps)
				}
			},
		},
		{
			name: "No TERM",
			env:  map[string]string{},
			check: func(t *testing.T, caps TermCaps) {
				if caps != (TermCaps{}) {
					t.Errorf("Expected empty caps without TERM, got %+v", caps)
				}
			},
		},
		{
			name: "Plain xterm",
			env:  map[string]string{"TERM": "xterm"},
			check: func(t *testing.T, caps TermCaps) {
				if !caps.Color16 || caps.Color256 || caps.TrueColor {
					t.Errorf("Expected 16-color only, got %+v", caps)
				}
			},
		},
		{
			name: "xterm-256color",
			env:  map[string]string{"TERM": "xterm-256color"},
			check: func(t *testing.T, caps TermCaps) {
				if !caps.Color256 || caps.TrueColor {
					t.Errorf("Expected 256 without truecolor, got %+v", caps)
				}
			},
		},
		{
			name: "COLORTERM truecolor",
			env:  map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"},
			check: func(t *testing.T, caps TermCaps) {
				if !caps.TrueColor {
					t.Errorf("Expected truecolor, got %+v", caps)
				}
			},
		},
		{
			name: "Kitty",
			env:  map[string]string{"TERM": "xterm-kitty", "KITTY_WINDOW_ID": "1"},
			check: func(t *testing.T, caps TermCaps) {
				if !caps.KittyGraphics || !caps.SyncOutput || !caps.Hyperlinks || !caps.Clipboard {
					t.Errorf("Expected kitty feature set, got %+v", caps)
				}
				if caps.Sixel {
					t.Errorf("Kitty does not speak sixel")
				}
			},
		},
		{
			name: "WezTerm",
			env:  map[string]string{"TERM": "wezterm", "WEZTERM_PANE": "0"},
			check: func(t *testing.T, caps TermCaps) {
				if !caps.KittyGraphics || !caps.Sixel {
					t.Errorf("Expected both graphics protocols, got %+v", caps)
				}
			},
		},
		{
			name: "iTerm2",
			env:  map[string]string{"TERM": "xterm-256color", "ITERM_SESSION_ID": "w0t0p0"},
			check: func(t *testing.T, caps TermCaps) {
				if !caps.Badge || !caps.Marks || !caps.TrueColor {
					t.Errorf("Expected iTerm2 feature set, got %+v", caps)
				}
			},
		},
		{
			name: "tmux strips graphics",
			env:  map[string]string{"TERM": "xterm-kitty", "KITTY_WINDOW_ID": "1", "TMUX": "/tmp/tmux-1000/default,123,0"},
			check: func(t *testing.T, caps TermCaps) {
				if caps.KittyGraphics || caps.Sixel || caps.SyncOutput {
					t.Errorf("Expected graphics and sync dropped under tmux, got %+v", caps)
				}
				if !caps.TrueColor {
					t.Errorf("Color depth should survive tmux")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, DetectEnv(envLookup(tt.env)))
		})
	}
}

func TestDetectEnvImmutableInputs(t *testing.T) {
	env := map[string]string{"TERM": "xterm-256color"}
	a := DetectEnv(envLookup(env))
	b := DetectEnv(envLookup(env))
	if a != b {
		t.Errorf("Detection not deterministic: %+v vs %+v", a, b)
	}
}
