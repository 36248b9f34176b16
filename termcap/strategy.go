package termcap

// RenderStrategy is a rendering fidelity tier, ordered low to high
type RenderStrategy uint8

const (
	StrategyASCIIFallback RenderStrategy = iota
	StrategyBasicANSI16
	StrategyEnhanced256
	StrategyRichTruecolor
	StrategySixelGraphics
	StrategyFullGraphics
)

var strategyNames = [...]string{
	StrategyASCIIFallback: "ascii_fallback",
	StrategyBasicANSI16:   "basic_ansi_16",
	StrategyEnhanced256:   "enhanced_256",
	StrategyRichTruecolor: "rich_truecolor_text",
	StrategySixelGraphics: "sixel_graphics",
	StrategyFullGraphics:  "full_graphics",
}

// String returns the tier name
func (s RenderStrategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// Select maps a capability set to its rendering tier. Pure and total;
// each tier is keyed on a single flag checked highest-first, so adding
// capabilities can only move the selection up, never down.
func Select(caps TermCaps) RenderStrategy {
	switch {
	case caps.KittyGraphics:
		return StrategyFullGraphics
	case caps.Sixel:
		return StrategySixelGraphics
	case caps.TrueColor:
		return StrategyRichTruecolor
	case caps.Color256:
		return StrategyEnhanced256
	case caps.Color16:
		return StrategyBasicANSI16
	default:
		return StrategyASCIIFallback
	}
}
