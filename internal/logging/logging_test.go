package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "whiteraven.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := Open(path, slog.LevelInfo)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		logger.Info(msg, "k", 1)
		logger.Debug("hidden")
		closer.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"msg=first", "msg=second", "app=whiteraven"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
}
