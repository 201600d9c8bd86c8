// Package extract implements the Extractor interface.
// It pulls the announcement title and the body fragment out of a
// built news page: the <title> value (falling back to the first <h1>)
// becomes the mail subject, and the serialized <body> is what the
// converter and the text/html alternative both consume.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are elements removed before the body is serialized.
// They contribute nothing to an announcement and would trip the
// converter's closed tag set.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
}

// PageExtractor reads title and body from raw page HTML.
type PageExtractor struct{}

// New creates a PageExtractor.
func New() *PageExtractor {
	return &PageExtractor{}
}

// Extract returns the page title and the full <body> element
// (including the body tags, which the converter requires as its
// entry point).
func (e *PageExtractor) Extract(html string) (title, body string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	sel := doc.Find("body")
	if sel.Length() == 0 {
		return "", "", fmt.Errorf("no <body> element in page")
	}
	body, err = goquery.OuterHtml(sel.First())
	if err != nil {
		return "", "", fmt.Errorf("serializing body: %w", err)
	}

	return title, body, nil
}
