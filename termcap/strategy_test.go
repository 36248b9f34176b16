package termcap

import "testing"

func TestSelectTiers(t *testing.T) {
	tests := []struct {
		name string
		caps TermCaps
		want RenderStrategy
	}{
		{"Empty", TermCaps{}, StrategyASCIIFallback},
		{"ANSI only", TermCaps{Color16: true}, StrategyBasicANSI16},
		{"256", TermCaps{Color16: true, Color256: true}, StrategyEnhanced256},
		{"Truecolor", TermCaps{Color16: true, Color256: true, TrueColor: true}, StrategyRichTruecolor},
		{"Sixel", TermCaps{Color16: true, Color256: true, TrueColor: true, Sixel: true}, StrategySixelGraphics},
		{"Kitty", TermCaps{Color16: true, Color256: true, TrueColor: true, KittyGraphics: true}, StrategyFullGraphics},
		{"Kitty beats sixel", TermCaps{KittyGraphics: true, Sixel: true}, StrategyFullGraphics},
		{"Sixel without color flags", TermCaps{Sixel: true}, StrategySixelGraphics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.caps); got != tt.want {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectDeterministic(t *testing.T) {
	caps := TermCaps{Color16: true, Color256: true, Sixel: true}
	first := Select(caps)
	for i := 0; i < 100; i++ {
		if got := Select(caps); got != first {
			t.Fatalf("Select not deterministic: %v then %v", first, got)
		}
	}
}

// Every proper superset of a capability set must select a tier at least
// as high as the subset's.
func TestSelectMonotonic(t *testing.T) {
	// The five flags strategy selection reads
	build := func(bits int) TermCaps {
		return TermCaps{
			Color16:       bits&1 != 0,
			Color256:      bits&2 != 0,
			TrueColor:     bits&4 != 0,
			Sixel:         bits&8 != 0,
			KittyGraphics: bits&16 != 0,
		}
	}

	for a := 0; a < 32; a++ {
		for b := 0; b < 32; b++ {
			if a&b != a {
				continue // a is not a subset of b
			}
			sa, sb := Select(build(a)), Select(build(b))
			if sb < sa {
				t.Errorf("Superset %05b selects %v, below subset %05b's %v", b, sb, a, sa)
			}
		}
	}
}

func TestStrategyOrdering(t *testing.T) {
	ordered := []RenderStrategy{
		StrategyASCIIFallback,
		StrategyBasicANSI16,
		StrategyEnhanced256,
		StrategyRichTruecolor,
		StrategySixelGraphics,
		StrategyFullGraphics,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("Tier %v not below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestStrategyString(t *testing.T) {
	if got := StrategyRichTruecolor.String(); got != "rich_truecolor_text" {
		t.Errorf("Unexpected name %q", got)
	}
	if got := RenderStrategy(99).String(); got != "unknown" {
		t.Errorf("Expected unknown for out-of-range, got %q", got)
	}
}
