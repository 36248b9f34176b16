//go:build unix

package term

import (
	"os"
	"os/signal"
	"syscall"
)

// ResizeEvent reports a new terminal size
type ResizeEvent struct {
	Width  int
	Height int
}

// WatchResize listens for SIGWINCH and delivers sizes on the returned
// channel until stop is closed. Delivery is latest-wins: a pending event
// is replaced rather than queued, so a consumer that falls behind sees
// the current size, not a backlog.
func WatchResize(stop <-chan struct{}) <-chan ResizeEvent {
	events := make(chan ResizeEvent, 1)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(sigCh)
		defer close(events)
		for {
			select {
			case <-stop:
				return
			case <-sigCh:
				w, h := terminalSize(int(os.Stdout.Fd()))
				if w <= 0 || h <= 0 {
					continue
				}
				ev := ResizeEvent{Width: w, Height: h}
				select {
				case events <- ev:
				default:
					select {
					case <-events:
					default:
					}
					select {
					case events <- ev:
					default:
					}
				}
			}
		}
	}()
	return events
}
