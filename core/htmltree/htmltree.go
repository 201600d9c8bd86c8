// Package htmltree builds a tree of tagged nodes from raw HTML.
// It streams the input through the x/net/html tokenizer and tracks
// open/close nesting with a stack. The tree is strict: a mismatched
// or surplus closing tag aborts parsing rather than being repaired.
package htmltree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Child is either a *Node or a Text run.
type Child interface {
	child()
}

// Text is a raw text run, verbatim from the tokenizer.
type Text string

func (Text) child() {}

// Node is one tagged element: name, attributes, and ordered children.
type Node struct {
	Name string
	Attr map[string]string
	Kids []Child
}

func (*Node) child() {}

// voidTags never receive a closing tag, so they attach without
// entering the open-tag stack.
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true,
	"input": true, "meta": true, "link": true,
}

// Parse consumes an HTML string and returns a synthetic root node
// holding the document's top-level elements.
func Parse(raw string) (*Node, error) {
	z := html.NewTokenizer(strings.NewReader(raw))
	root := &Node{}
	stack := []*Node{root}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("tokenizing HTML: %w", err)
			}
			if len(stack) > 1 {
				return nil, fmt.Errorf("unclosed tag <%s> at end of input", stack[len(stack)-1].Name)
			}
			return root, nil

		case html.TextToken:
			top := stack[len(stack)-1]
			top.Kids = append(top.Kids, Text(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			node := makeNode(z)
			top := stack[len(stack)-1]
			top.Kids = append(top.Kids, node)
			if tt == html.StartTagToken && !voidTags[node.Name] {
				stack = append(stack, node)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 1 {
				return nil, fmt.Errorf("closing tag </%s> with no open element", name)
			}
			top := stack[len(stack)-1]
			if top.Name != string(name) {
				return nil, fmt.Errorf("mismatched closing tag </%s>, open element is <%s>", name, top.Name)
			}
			stack = stack[:len(stack)-1]

		case html.CommentToken, html.DoctypeToken:
			// not part of the tag tree
		}
	}
}

// makeNode reads the current tag token into a Node.
func makeNode(z *html.Tokenizer) *Node {
	name, hasAttr := z.TagName()
	node := &Node{Name: string(name)}
	if hasAttr {
		node.Attr = map[string]string{}
		for {
			key, val, more := z.TagAttr()
			node.Attr[string(key)] = string(val)
			if !more {
				break
			}
		}
	}
	return node
}

// Body returns the first body-named descendant, the conversion entry
// point for the document model.
func (n *Node) Body() (*Node, error) {
	if b := findNamed(n, "body"); b != nil {
		return b, nil
	}
	return nil, fmt.Errorf("no <body> element in document")
}

func findNamed(n *Node, name string) *Node {
	if n.Name == name {
		return n
	}
	for _, kid := range n.Kids {
		if child, ok := kid.(*Node); ok {
			if found := findNamed(child, name); found != nil {
				return found
			}
		}
	}
	return nil
}
