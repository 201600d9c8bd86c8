package format

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/newsmail/core/model"
	"github.com/muesli/reflow/ansi"
)

// Width is the fixed output column width.
const Width = 80

// listIndent is the hanging-indent width for list items.
const listIndent = 4

// bullet marks unordered list items.
const bullet = "* "

// Line is one logical paragraph line prior to column wrapping. First
// prefixes the first physical line (it may carry a list marker), Cont
// prefixes every wrapped continuation. Refs snapshots the anchor
// table size after this line's content was rendered, which is what
// lets the wrapper place newly introduced references directly beneath
// the line that introduced them.
type Line struct {
	Cont  string
	First string
	Text  string
	Refs  int
}

func (l Line) blank() bool {
	return l.Cont == "" && l.First == "" && l.Text == ""
}

// Format linearizes a document into logical lines, threading the
// shared anchor table through the whole traversal.
func Format(doc *model.Block, refs *Refs) []Line {
	return formatBlock(doc, refs)
}

// formatBlock formats each non-empty child in order, with one blank
// separator line between successive children.
func formatBlock(b *model.Block, refs *Refs) []Line {
	var out []Line
	for _, kid := range b.Kids {
		// Snapshot before formatting: the separator must not claim
		// references the child introduces.
		before := refs.Len()
		lines := formatNode(kid, refs)
		if len(lines) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, Line{Refs: before})
		}
		out = append(out, lines...)
	}
	return out
}

func formatNode(n model.BlockNode, refs *Refs) []Line {
	switch el := n.(type) {
	case *model.Block:
		return formatBlock(el, refs)
	case *model.Group:
		text := renderInline(el.Kids, refs)
		return []Line{{Text: text, Refs: refs.Len()}}
	case *model.Heading:
		return formatHeading(el, refs)
	case *model.List:
		return formatList(el, refs)
	case *model.Item:
		// A stray item outside a list renders markerless.
		return formatBlock(el.Body, refs)
	}
	return nil
}

// formatHeading renders the heading group, then underlines it to the
// width of its widest wrapped physical line. Level 0 underlines with
// '=', level 1 with '-'.
func formatHeading(h *model.Heading, refs *Refs) []Line {
	ch := "="
	if h.Level == 1 {
		ch = "-"
	}
	line := Line{Text: renderInline(h.Content.Kids, refs), Refs: refs.Len()}

	widest := 0
	for _, phys := range wrapLine(line, Width) {
		if w := ansi.PrintableRuneWidth(phys); w > widest {
			widest = w
		}
	}
	return []Line{line, {Text: strings.Repeat(ch, widest), Refs: refs.Len()}}
}

// formatList numbers non-empty items by position (empty items are
// skipped, not counted) and separates items with a blank line.
func formatList(l *model.List, refs *Refs) []Line {
	var out []Line
	pos := 0
	for _, item := range l.Items {
		if item.Body.Empty() {
			continue
		}
		pos++
		marker := bullet
		if l.Ordered {
			marker = fmt.Sprintf("%d. ", pos)
		}
		before := refs.Len()
		lines := formatItem(item, marker, refs)
		if len(lines) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, Line{Refs: before})
		}
		out = append(out, lines...)
	}
	return out
}

// formatItem formats the item body, then pads: the first line takes
// the marker as its first-line prefix, every line takes the list
// indent as its continuation prefix. Blank separator lines inside the
// body stay fully blank.
func formatItem(item *model.Item, marker string, refs *Refs) []Line {
	lines := formatBlock(item.Body, refs)
	pad := strings.Repeat(" ", listIndent)
	first := true
	for i := range lines {
		if lines[i].blank() {
			continue
		}
		lines[i].Cont = pad + lines[i].Cont
		if first {
			lines[i].First = marker + lines[i].First
			first = false
		} else {
			lines[i].First = pad + lines[i].First
		}
	}
	return lines
}

// renderInline flattens inline content into one string. Inline
// elements never introduce paragraph breaks, so this is a plain
// string operation, not a line producer.
func renderInline(kids []model.InlineNode, refs *Refs) string {
	var b strings.Builder
	for _, kid := range kids {
		b.WriteString(renderInlineNode(kid, refs))
	}
	return b.String()
}

func renderInlineNode(n model.InlineNode, refs *Refs) string {
	switch el := n.(type) {
	case model.Text:
		return collapseSpace(string(el))
	case *model.Strong:
		return "*" + strings.TrimSpace(renderInline(el.Kids, refs)) + "*"
	case *model.Emphasis:
		return "_" + strings.TrimSpace(renderInline(el.Kids, refs)) + "_"
	case *model.Anchor:
		label := strings.TrimSpace(renderInline(el.Kids, refs))
		// Trailing space keeps following punctuation a separate word.
		return fmt.Sprintf("%s [%d] ", label, refs.Ref(el.Href))
	}
	return ""
}

// collapseSpace reduces every maximal whitespace run (spaces, tabs,
// newlines) to a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte(' ')
			inSpace = false
		}
		b.WriteRune(r)
	}
	if inSpace {
		b.WriteByte(' ')
	}
	return b.String()
}
