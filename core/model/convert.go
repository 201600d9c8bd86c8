package model

import (
	"fmt"

	"github.com/gaurav-prasanna/newsmail/core/htmltree"
)

// Convert turns one tag node into exactly one model element,
// converting children first. The tag set is deliberately closed: an
// unrecognized tag is a hard error, never silently dropped or passed
// through as a generic container.
func Convert(n *htmltree.Node) (Node, error) {
	switch n.Name {
	case "p", "div", "body", "footer":
		kids, err := convertKids(n)
		if err != nil {
			return nil, err
		}
		return NewBlock(kids), nil

	case "ol":
		return convertList(n, true)
	case "ul":
		return convertList(n, false)

	case "li":
		kids, err := convertKids(n)
		if err != nil {
			return nil, err
		}
		return &Item{Body: NewBlock(kids)}, nil

	case "h1":
		return convertHeading(n, 0)
	case "h2":
		return convertHeading(n, 1)

	case "a":
		href, ok := n.Attr["href"]
		if !ok {
			return nil, fmt.Errorf("<a> element without href attribute")
		}
		kids, err := convertInlineKids(n)
		if err != nil {
			return nil, err
		}
		return &Anchor{Href: href, Kids: kids}, nil

	case "strong", "b":
		kids, err := convertInlineKids(n)
		if err != nil {
			return nil, err
		}
		return &Strong{Kids: kids}, nil

	case "em", "i":
		kids, err := convertInlineKids(n)
		if err != nil {
			return nil, err
		}
		return &Emphasis{Kids: kids}, nil

	case "br":
		// An empty text run: forces a paragraph break without content.
		return Text(""), nil

	default:
		return nil, fmt.Errorf("unsupported tag <%s>", n.Name)
	}
}

// convertKids converts every child of a tag node, text runs becoming
// Text leaves verbatim.
func convertKids(n *htmltree.Node) ([]Node, error) {
	kids := make([]Node, 0, len(n.Kids))
	for _, kid := range n.Kids {
		switch k := kid.(type) {
		case htmltree.Text:
			kids = append(kids, Text(k))
		case *htmltree.Node:
			el, err := Convert(k)
			if err != nil {
				return nil, err
			}
			kids = append(kids, el)
		}
	}
	return kids, nil
}

// convertInlineKids converts children that must all be inline.
func convertInlineKids(n *htmltree.Node) ([]InlineNode, error) {
	kids, err := convertKids(n)
	if err != nil {
		return nil, err
	}
	inline := make([]InlineNode, 0, len(kids))
	for _, kid := range kids {
		in, ok := kid.(InlineNode)
		if !ok {
			return nil, fmt.Errorf("block element inside inline <%s>", n.Name)
		}
		inline = append(inline, in)
	}
	return inline, nil
}

func convertHeading(n *htmltree.Node, level int) (Node, error) {
	kids, err := convertKids(n)
	if err != nil {
		return nil, err
	}
	blk := NewBlock(kids)
	if len(blk.Kids) != 1 {
		return nil, fmt.Errorf("heading must hold exactly one inline group, got %d blocks", len(blk.Kids))
	}
	group, ok := blk.Kids[0].(*Group)
	if !ok {
		return nil, fmt.Errorf("heading holds block content, want inline text")
	}
	return &Heading{Level: level, Content: group}, nil
}

func convertList(n *htmltree.Node, ordered bool) (Node, error) {
	kids, err := convertKids(n)
	if err != nil {
		return nil, err
	}
	list := &List{Ordered: ordered}
	for _, kid := range NewBlock(kids).Kids {
		item, ok := kid.(*Item)
		if !ok {
			return nil, fmt.Errorf("list contains non-item element")
		}
		list.Items = append(list.Items, item)
	}
	return list, nil
}
