// termloom demo: an animated dashboard driving the full render pipeline
// (paint, diff, coalesce, present) at a fixed cadence until interrupted.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"termloom/surface"
	"termloom/term"
	"termloom/termcap"
	"termloom/tui"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	caps := termcap.Detect()
	logger.Info("session capabilities",
		"strategy", termcap.Select(caps).String(),
		"truecolor", caps.TrueColor,
		"sync_output", caps.SyncOutput)

	t, err := term.Open(term.DefaultOptions())
	if err != nil {
		logger.Error("open failed", "err", err)
		os.Exit(1)
	}

	// Terminal restoration must be the last bytes written, on every exit
	// path including signals
	defer t.Deinit()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	stop := make(chan struct{})
	defer close(stop)
	resize := term.WatchResize(stop)

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	var (
		history []float64
		frame   int
	)

	for {
		select {
		case <-sigCh:
			return
		case ev := <-resize:
			t.Resize(ev.Width, ev.Height)
		case <-tick.C:
		}

		frame++
		v := 0.5 + 0.5*math.Sin(float64(frame)/12)
		history = append(history, v)
		if len(history) > 256 {
			history = history[1:]
		}

		_, err := t.RenderWith(func(p *surface.Painter) error {
			paintDashboard(p, frame, v, history)
			return nil
		})
		if err != nil {
			// Mode restoration still runs via the deferred Deinit
			logger.Error("render failed", "err", err)
			return
		}
	}
}

func paintDashboard(p *surface.Painter, frame int, v float64, history []float64) {
	w, h := p.Size()

	title := surface.Style{Fg: surface.RGB(240, 240, 250), Attrs: surface.AttrBold}
	dim := surface.Style{Fg: surface.Indexed(245)}
	accent := surface.Style{Fg: surface.RGB(120, 200, 255)}

	tui.Text(p, 1, 0, "termloom", title)
	tui.Text(p, 11, 0, fmt.Sprintf("frame %d", frame), dim)

	if h > 2 {
		tui.Progress(p.Sub(1, 2, w-2, 1), 0, "cpu:", v, accent)
	}
	if h > 3 {
		tui.Progress(p.Sub(1, 3, w-2, 1), 0, "mem:", 1-v, accent)
	}
	if h > 5 {
		tui.Sparkline(p.Sub(1, 5, w-2, 1), 0, history, dim)
	}
	if h > 7 {
		tui.InputField(p.Sub(1, 7, w-2, 1), 0, ">", "hello", 5, title)
	}
}
