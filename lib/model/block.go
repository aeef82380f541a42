package model

import "strings"

// Block is a structural container. Attribute runs never extend past it.
type Block struct {
	Name     string
	Children []*Node
}

// NewBlock builds a detached block with normalized children.
func NewBlock(name string, nodes ...*Node) *Block {
	block := &Block{Name: name, Children: nodes}
	block.normalize()
	return block
}

func (b *Block) Size() int {
	size := 0
	for _, child := range b.Children {
		size += child.Size()
	}
	return size
}

// Text renders the block content, inline elements as U+FFFC.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, child := range b.Children {
		if child.IsText() {
			sb.WriteString(child.Data)
		} else {
			sb.WriteRune(ObjectReplacement)
		}
	}
	return sb.String()
}

// childAt returns the index of the child holding offset and the offset inside
// that child. inner == 0 means offset sits on the child's start boundary;
// index == len(Children) means offset is at the end of the block.
func (b *Block) childAt(offset int) (index int, inner int) {
	acc := 0
	for i, child := range b.Children {
		size := child.Size()
		if offset < acc+size {
			return i, offset - acc
		}
		acc += size
	}
	return len(b.Children), 0
}

// offsetOf returns the start offset of the child at index.
func (b *Block) offsetOf(index int) int {
	offset := 0
	for _, child := range b.Children[:index] {
		offset += child.Size()
	}
	return offset
}

// splitAt guarantees a child boundary at offset and returns the index of the
// child starting there.
func (b *Block) splitAt(offset int) int {
	index, inner := b.childAt(offset)
	if inner == 0 {
		return index
	}
	node := b.Children[index]
	runes := []rune(node.Data)
	left := &Node{Kind: NodeText, Name: node.Name, Data: string(runes[:inner]), Attribs: node.Attribs}
	right := &Node{Kind: NodeText, Name: node.Name, Data: string(runes[inner:]), Attribs: node.Attribs}

	children := make([]*Node, 0, len(b.Children)+1)
	children = append(children, b.Children[:index]...)
	children = append(children, left, right)
	children = append(children, b.Children[index+1:]...)
	b.Children = children
	return index + 1
}

// normalize drops empty text nodes and merges neighbouring text nodes that
// carry the same attribute string.
func (b *Block) normalize() {
	merged := make([]*Node, 0, len(b.Children))
	for _, child := range b.Children {
		if child.IsText() && child.Data == "" {
			continue
		}
		if n := len(merged); n > 0 {
			last := merged[n-1]
			if last.IsText() && child.IsText() && last.Attribs == child.Attribs {
				merged[n-1] = &Node{Kind: NodeText, Name: last.Name, Data: last.Data + child.Data, Attribs: last.Attribs}
				continue
			}
		}
		merged = append(merged, child)
	}
	b.Children = merged
}

func (b *Block) clone() *Block {
	children := make([]*Node, len(b.Children))
	for i, child := range b.Children {
		children[i] = child.clone()
	}
	return &Block{Name: b.Name, Children: children}
}
