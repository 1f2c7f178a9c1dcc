package integrations

import (
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/browser"
)

// BrowserOpener opens URLs in the system browser.
type BrowserOpener struct{}

func NewBrowserOpener() *BrowserOpener {
	// pkg/browser echoes the launcher's output to the terminal, which would
	// tear the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{}
}

func (o *BrowserOpener) Open(rawURL string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}
	if err := browser.OpenURL(rawURL); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// ValidateURL accepts absolute http(s) URLs with a host.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", rawURL)
	}
	return nil
}
