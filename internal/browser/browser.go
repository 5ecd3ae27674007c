// Package browser hands URLs to the desktop's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// launch starts name without waiting for it. Tests replace it.
var launch = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open validates rawURL and opens it. Only http and https are allowed.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("refusing to open URL without a host: %q", rawURL)
	}

	name, args := opener(runtime.GOOS, u.String())
	if err := launch(name, args...); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return nil
}

func opener(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		// rundll32 avoids cmd /c start and its shell interpretation
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}
