package model

import "unicode/utf8"

type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeInlineElement
)

// TextName is the schema item name shared by all text nodes.
const TextName = "$text"

// ObjectReplacement stands for an inline element in Block.Text.
const ObjectReplacement = '\uFFFC'

// Node is an inline child of a block: either a run of text or an inline
// element such as a soft break. Attribs is an attribute string resolved
// against the document pool.
type Node struct {
	Kind    NodeKind
	Name    string
	Data    string
	Attribs string
}

func (n *Node) IsText() bool {
	return n.Kind == NodeText
}

// Size is the number of offsets the node occupies.
func (n *Node) Size() int {
	if n.Kind == NodeText {
		return utf8.RuneCountInString(n.Data)
	}
	return 1
}

func (n *Node) clone() *Node {
	copied := *n
	return &copied
}
