//go:build unix

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalSize returns the winsize for a given fd, or zeros on error
func terminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Col), int(ws.Row)
}

// resetTerminalMode restores cooked mode via /dev/tty. Best-effort for
// crash recovery; escape sequences alone do not restore termios.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	fd := int(tty.Fd())
	if termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
	}
}
