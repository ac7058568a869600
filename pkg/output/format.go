package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled decides whether styled output should be written to w
func ColorEnabled(w io.Writer, want bool) bool {
	if !want || termenv.EnvNoColor() {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	// Piped or redirected
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}
