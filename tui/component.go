// Package tui provides small widgets painted through the surface
// package's bounded Painter. Widgets never mutate siblings: each draws
// only inside the painter it is handed.
package tui

import "termloom/surface"

// Component is the polymorphic widget contract used by layout layers.
// Render and Layout must not mutate sibling components.
type Component interface {
	// Measure returns the preferred size within the given maximum
	Measure(maxW, maxH int) (w, h int)

	// Layout assigns the component its final rectangle
	Layout(x, y, w, h int)

	// Render paints the component into its painter
	Render(p *surface.Painter)

	// HandleEvent consumes an input event, reporting whether it was
	// handled
	HandleEvent(ev any) bool

	// DebugName identifies the component in diagnostics
	DebugName() string
}
