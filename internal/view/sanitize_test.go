package view

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  Once upon a time.  ", "Once upon a time."},
		{"entities", "Salt &amp; iron", "Salt & iron"},
		{"script removed", "<p>Hello</p><script>alert(1)</script>", "Hello"},
		{"tags to text", "<b>bold</b> move", "bold move"},
		{"line break", "one<br>two", "one\ntwo"},
		{"ansi stripped", "\x1b[31mred\x1b[0m text", "red text"},
		{"control dropped", "bell\a and\x00 nul", "bell and nul"},
		{"newline kept", "line one\nline two", "line one\nline two"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("%s: Clean(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestCleanLine(t *testing.T) {
	if got := CleanLine("  a\n\tb   c "); got != "a b c" {
		t.Errorf("CleanLine = %q", got)
	}
}
