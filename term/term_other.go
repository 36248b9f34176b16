//go:build !unix

package term

func terminalSize(fd int) (int, int) {
	return 0, 0
}

func resetTerminalMode() {}
