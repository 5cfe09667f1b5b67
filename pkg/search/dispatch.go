// Package search sends queries from the start page to an external search
// engine in the user's browser.
package search

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// Opener opens a URL outside the terminal.
type Opener interface {
	OpenURL(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// OpenURL calls f(url).
func (f OpenerFunc) OpenURL(url string) error {
	return f(url)
}

// BrowserOpener opens URLs in the system browser.
var BrowserOpener Opener = OpenerFunc(browser.OpenURL)

// Dispatcher builds search URLs and hands them to an Opener.
type Dispatcher struct {
	baseURL func() string
	opener  Opener
}

// NewDispatcher creates a dispatcher. baseURL is read on every dispatch so a
// changed search URL setting takes effect immediately.
func NewDispatcher(baseURL func() string, opener Opener) *Dispatcher {
	if opener == nil {
		opener = BrowserOpener
	}
	return &Dispatcher{baseURL: baseURL, opener: opener}
}

// OpenSearch opens baseURL + the encoded query. A query that is empty after
// trimming is ignored and returns "", nil. The returned string is the URL
// that was opened.
func (d *Dispatcher) OpenSearch(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", nil
	}

	target := d.baseURL() + EncodeQuery(query)
	if err := d.opener.OpenURL(target); err != nil {
		return target, fmt.Errorf("failed to open %s: %w", target, err)
	}
	return target, nil
}

// EncodeQuery escapes a query component the way browsers'
// encodeURIComponent does, with spaces as %20.
func EncodeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
