// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Writer writes to the system clipboard. When no clipboard utility is present
// and OSC52 is set, it falls back to the terminal's OSC 52 sequence, which
// also works over SSH.
type Writer struct {
	OSC52 bool
	// Out receives the OSC 52 sequence; nil means stdout. While a full-screen
	// program is running it must be the same writer the program renders to.
	Out io.Writer

	// write and osc52 are swapped out in tests.
	write func(string) error
	osc52 func(string)
}

func New(osc52 bool) *Writer {
	return &Writer{OSC52: osc52}
}

func (w *Writer) WriteAll(text string) error {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	write := w.write
	if write == nil {
		write = clipboard.WriteAll
	}
	err := write(text)
	if err == nil {
		return nil
	}
	if !w.OSC52 {
		return fmt.Errorf("writing clipboard: %w", err)
	}

	osc := w.osc52
	if osc == nil {
		osc = w.copyOSC52
	}
	osc(text)
	return nil
}

func (w *Writer) copyOSC52(text string) {
	out := w.Out
	if out == nil {
		out = os.Stdout
	}
	termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii)).Copy(text)
}

// Available reports whether a native clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}
