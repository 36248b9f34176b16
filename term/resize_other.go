//go:build !unix

package term

// ResizeEvent reports a new terminal size
type ResizeEvent struct {
	Width  int
	Height int
}

// WatchResize is a no-op on platforms without SIGWINCH; the channel
// closes when stop does.
func WatchResize(stop <-chan struct{}) <-chan ResizeEvent {
	events := make(chan ResizeEvent)
	go func() {
		<-stop
		close(events)
	}()
	return events
}
