package browser

import (
	"errors"
	"testing"
)

func stubLaunch(t *testing.T, err error) *[]string {
	t.Helper()
	var calls []string
	orig := launch
	launch = func(name string, args ...string) error {
		calls = append(calls, name)
		calls = append(calls, args...)
		return err
	}
	t.Cleanup(func() { launch = orig })
	return &calls
}

func TestOpenRejectsNonHTTP(t *testing.T) {
	calls := stubLaunch(t, nil)

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com", false},
		{"http://localhost:5000/", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"http://", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Open(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Open(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Open(%q): unexpected error: %v", tt.url, err)
		}
	}
	if len(*calls) == 0 {
		t.Error("expected the launcher to run for valid URLs")
	}
}

func TestOpenLaunchFailure(t *testing.T) {
	stubLaunch(t, errors.New("no display"))
	if err := Open("https://example.com"); err == nil {
		t.Error("expected launch error to surface")
	}
}

func TestOpener(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args int
	}{
		{"darwin", "open", 1},
		{"linux", "xdg-open", 1},
		{"freebsd", "xdg-open", 1},
		{"windows", "rundll32", 2},
	}
	for _, tt := range tests {
		name, args := opener(tt.goos, "https://example.com")
		if name != tt.name || len(args) != tt.args {
			t.Errorf("opener(%s) = %s %v", tt.goos, name, args)
		}
		if args[len(args)-1] != "https://example.com" {
			t.Errorf("opener(%s): url not last arg: %v", tt.goos, args)
		}
	}
}
