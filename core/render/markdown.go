// Package render provides preview renderers for announcements. The
// text/plain part of the outgoing mail always comes from the textify
// converter; these renderers exist so a page can be inspected in
// other shapes before it is sent.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/newsmail/core"
)

// MarkdownRenderer previews the announcement body as Markdown, which
// reads comfortably in a terminal or pager.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the page's body HTML into Markdown.
func (r *MarkdownRenderer) Render(a core.Announcement) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(a.Page.HTML)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
