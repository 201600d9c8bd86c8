// Package model defines the document model the formatter consumes:
// a small closed set of block and inline elements built from the tag
// tree. The split between block and inline is enforced structurally —
// a Block holds only block-level children, and consecutive inline
// content is coalesced into Group paragraphs at construction time, so
// an inline element can never sit directly under a Block.
package model

import "strings"

// Node is any model element.
type Node interface {
	node()
}

// BlockNode occupies its own paragraph and may contain other blocks
// or inline groups.
type BlockNode interface {
	Node
	blockNode()
}

// InlineNode contributes to running text and appears only inside a
// Group or another inline element.
type InlineNode interface {
	Node
	inlineNode()
}

// Block is an ordered sequence of block-level children.
type Block struct {
	Kids []BlockNode
}

// Group is an inline-only block: one paragraph of running text.
type Group struct {
	Kids []InlineNode
}

// Heading wraps a single inline group. Level 0 underlines with '=',
// level 1 with '-'.
type Heading struct {
	Level   int
	Content *Group
}

// List is a block of items, ordered or unordered.
type List struct {
	Ordered bool
	Items   []*Item
}

// Item is one list entry, rendered with a marker on its first line.
type Item struct {
	Body *Block
}

// Strong is inline bold content.
type Strong struct {
	Kids []InlineNode
}

// Emphasis is inline italic content.
type Emphasis struct {
	Kids []InlineNode
}

// Anchor is an inline hyperlink carrying its target.
type Anchor struct {
	Href string
	Kids []InlineNode
}

// Text is the inline leaf: a raw string, whitespace not yet collapsed.
type Text string

func (*Block) node()   {}
func (*Group) node()   {}
func (*Heading) node() {}
func (*List) node()    {}
func (*Item) node()    {}
func (*Strong) node()  {}
func (*Emphasis) node() {}
func (*Anchor) node()  {}
func (Text) node()     {}

func (*Block) blockNode()   {}
func (*Group) blockNode()   {}
func (*Heading) blockNode() {}
func (*List) blockNode()    {}
func (*Item) blockNode()    {}

func (*Strong) inlineNode()   {}
func (*Emphasis) inlineNode() {}
func (*Anchor) inlineNode()   {}
func (Text) inlineNode()      {}

// NewBlock builds a Block from mixed children, restoring the
// block/inline invariant:
//   - consecutive inline children merge into a single Group;
//   - an empty Text (a converted <br>) closes the open group, forcing
//     a paragraph break without adding content;
//   - whitespace-only text outside a group is dropped;
//   - block children stand alone.
func NewBlock(kids []Node) *Block {
	blk := &Block{}
	var group []InlineNode

	flush := func() {
		if len(group) > 0 {
			blk.Kids = append(blk.Kids, &Group{Kids: group})
			group = nil
		}
	}

	for _, kid := range kids {
		switch k := kid.(type) {
		case Text:
			if k == "" {
				flush()
				continue
			}
			if strings.TrimSpace(string(k)) == "" && len(group) == 0 {
				continue
			}
			group = append(group, k)
		case InlineNode:
			group = append(group, k)
		case BlockNode:
			flush()
			blk.Kids = append(blk.Kids, k)
		}
	}
	flush()
	return blk
}

// Empty reports whether the block renders no content at all.
func (b *Block) Empty() bool {
	return len(b.Kids) == 0
}
