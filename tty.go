package canopy

import (
	"os"

	"github.com/creack/pty"
)

// terminalSize queries the terminal attached to f for its dimensions in
// character cells. Errors (e.g. f is not a tty) leave the caller on its
// fallback size.
func terminalSize(f *os.File) (width, height int, err error) {
	ws, err := pty.GetsizeFull(f)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Cols), int(ws.Rows), nil
}
