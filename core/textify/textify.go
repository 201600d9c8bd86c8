// Package textify implements the Converter interface: it turns one
// HTML document into wrapped plain text with footnote-style numbered
// link references, suitable for the text/plain part of a
// multipart/alternative message.
package textify

import (
	"fmt"

	"github.com/gaurav-prasanna/newsmail/core/format"
	"github.com/gaurav-prasanna/newsmail/core/htmltree"
	"github.com/gaurav-prasanna/newsmail/core/model"
)

// Options configures a conversion. Output width is fixed at 80
// columns; the anchor placement mode is the only output style knob.
type Options struct {
	Anchors format.Placement
}

// Converter converts HTML documents to plain text.
type Converter struct {
	opts Options
}

// New creates a Converter.
func New(opts Options) *Converter {
	return &Converter{opts: opts}
}

// Convert parses the HTML, builds the document model from its body,
// and formats it. Conversion either fully succeeds or aborts: parse
// errors, unsupported tags, and missing href attributes all propagate
// without partial output.
func (c *Converter) Convert(html string) (string, error) {
	root, err := htmltree.Parse(html)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	body, err := root.Body()
	if err != nil {
		return "", err
	}

	el, err := model.Convert(body)
	if err != nil {
		return "", fmt.Errorf("building document model: %w", err)
	}
	doc, ok := el.(*model.Block)
	if !ok {
		return "", fmt.Errorf("document body is not a block element")
	}

	refs := format.NewRefs()
	lines := format.Format(doc, refs)
	return format.Render(lines, refs, c.opts.Anchors), nil
}

// Convert is the package-level shorthand with default options.
func Convert(html string) (string, error) {
	return New(Options{}).Convert(html)
}
