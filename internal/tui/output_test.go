package tui

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestOutputSerializesWrites(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	out := NewOutput(f)

	frame := strings.Repeat("frame ", 200) + "\n"
	osc := "\x1b]52;c;c3Rvcnk=\a\n"

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); out.Write([]byte(frame)) }()
		go func() { defer wg.Done(); out.Write([]byte(osc)) }()
	}
	wg.Wait()

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	var frames, seqs int
	for _, l := range lines {
		switch l {
		case frame:
			frames++
		case osc:
			seqs++
		case "":
		default:
			t.Fatalf("interleaved write: %q", l)
		}
	}
	if frames != 20 || seqs != 20 {
		t.Errorf("frames=%d seqs=%d, want 20 each", frames, seqs)
	}
	if out.Fd() != f.Fd() {
		t.Error("Fd should expose the wrapped file")
	}
}
