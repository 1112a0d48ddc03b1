// Package documents builds delivery-note and invoice documents: HTML from
// templates, PDF via a pluggable renderer.
package documents

import "context"

// Renderer turns a self-contained HTML page into document bytes. The
// chromedp implementation produces a PDF; HTMLRenderer passes the page
// through unchanged (tests, environments without Chrome).
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
	ContentType() string
}

// HTMLRenderer is the no-Chrome fallback: the document bytes are the HTML
// itself.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(_ context.Context, html string) ([]byte, error) {
	return []byte(html), nil
}

func (HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }
