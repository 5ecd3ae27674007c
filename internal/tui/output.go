package tui

import (
	"os"
	"sync"
)

// Output is the terminal the program renders to. Writes are serialized so a
// sequence written from a command goroutine, like the OSC 52 clipboard
// fallback, lands between frames rather than inside one.
type Output struct {
	mu sync.Mutex
	f  *os.File
}

func NewOutput(f *os.File) *Output {
	return &Output{f: f}
}

func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.f.Write(p)
}

func (o *Output) Read(p []byte) (int, error) { return o.f.Read(p) }

// Close is a no-op; the underlying file belongs to the caller.
func (o *Output) Close() error { return nil }

// Fd lets bubbletea detect the terminal behind the wrapper.
func (o *Output) Fd() uintptr { return o.f.Fd() }
