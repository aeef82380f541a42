package model

import (
	"maps"
	"strings"

	"github.com/lexml/urnlink-go/lib/apool"
	"github.com/lexml/urnlink-go/lib/exception"
)

// Document is the model tree: an ordered list of blocks sharing one
// attribute pool, named markers and the document selection.
type Document struct {
	Blocks    []*Block
	Pool      *apool.APool
	Markers   map[string]Range
	selection Selection
}

func NewDocument(pool *apool.APool) *Document {
	if pool == nil {
		pool = apool.NewAPool()
	}
	return &Document{
		Pool:      pool,
		Markers:   make(map[string]Range),
		selection: NewSelection(),
	}
}

// AppendBlock adds a block outside of any change scope. It is meant for
// building detached documents, e.g. while parsing input.
func (d *Document) AppendBlock(name string, nodes ...*Node) *Block {
	block := NewBlock(name, nodes...)
	d.Blocks = append(d.Blocks, block)
	return block
}

func (d *Document) NewText(data string, attrs ...apool.Attribute) *Node {
	return &Node{Kind: NodeText, Name: TextName, Data: data, Attribs: d.encode(attrs)}
}

func (d *Document) NewElement(name string, attrs ...apool.Attribute) *Node {
	return &Node{Kind: NodeInlineElement, Name: name, Attribs: d.encode(attrs)}
}

func (d *Document) encode(attrs []apool.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	attrMap := apool.NewAttributeMap(d.Pool)
	attrMap.Update(attrs)
	return attrMap.String()
}

func (d *Document) Selection() *DocumentSelection {
	return &DocumentSelection{doc: d}
}

// Text renders every block on its own line.
func (d *Document) Text() string {
	lines := make([]string, len(d.Blocks))
	for i, block := range d.Blocks {
		lines[i] = block.Text()
	}
	return strings.Join(lines, "\n")
}

func (d *Document) CheckPosition(p Position) error {
	if p.Block < 0 || p.Block >= len(d.Blocks) || p.Offset < 0 || p.Offset > d.Blocks[p.Block].Size() {
		return exception.NewInvalidPositionError(p.Block, p.Offset)
	}
	return nil
}

func (d *Document) CheckRange(r Range) error {
	if err := d.CheckPosition(r.Start); err != nil {
		return err
	}
	if err := d.CheckPosition(r.End); err != nil {
		return err
	}
	if r.End.IsBefore(r.Start) {
		return exception.NewInvalidPositionError(r.End.Block, r.End.Offset)
	}
	return nil
}

// TextNodeAt returns the text node that p lies strictly inside, or nil.
func (d *Document) TextNodeAt(p Position) *Node {
	if d.CheckPosition(p) != nil {
		return nil
	}
	block := d.Blocks[p.Block]
	index, inner := block.childAt(p.Offset)
	if inner == 0 {
		return nil
	}
	return block.Children[index]
}

// NodeBefore returns the node ending at p, or nil when p is inside a text
// node or at the block start.
func (d *Document) NodeBefore(p Position) *Node {
	index, ok := d.boundaryIndex(p)
	if !ok || index == 0 {
		return nil
	}
	return d.Blocks[p.Block].Children[index-1]
}

// NodeAfter returns the node starting at p, or nil when p is inside a text
// node or at the block end.
func (d *Document) NodeAfter(p Position) *Node {
	index, ok := d.boundaryIndex(p)
	if !ok {
		return nil
	}
	block := d.Blocks[p.Block]
	if index >= len(block.Children) {
		return nil
	}
	return block.Children[index]
}

func (d *Document) boundaryIndex(p Position) (int, bool) {
	if d.CheckPosition(p) != nil {
		return 0, false
	}
	index, inner := d.Blocks[p.Block].childAt(p.Offset)
	return index, inner == 0
}

// NodeAttribute reads key from the attribute set of n.
func (d *Document) NodeAttribute(n *Node, key string) (string, bool) {
	if n == nil || n.Attribs == "" {
		return "", false
	}
	attrMap := apool.FromString(n.Attribs, d.Pool)
	return attrMap.Get(key)
}

func (d *Document) NodeAttributes(n *Node) []apool.Attribute {
	if n == nil || n.Attribs == "" {
		return nil
	}
	attrMap := apool.FromString(n.Attribs, d.Pool)
	return attrMap.Entries()
}

// WalkFunc receives every node intersecting a range together with the
// block offsets [start, end) of the covered part. Returning false stops.
type WalkFunc func(block int, node *Node, start, end int) bool

// Walk visits the nodes covered by r in document order.
func (d *Document) Walk(r Range, fn WalkFunc) {
	if d.CheckRange(r) != nil {
		return
	}
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		block := d.Blocks[bi]
		from, to := 0, block.Size()
		if bi == r.Start.Block {
			from = r.Start.Offset
		}
		if bi == r.End.Block {
			to = r.End.Offset
		}
		offset := 0
		for _, child := range block.Children {
			size := child.Size()
			start, end := max(offset, from), min(offset+size, to)
			offset += size
			if start >= end {
				continue
			}
			if !fn(bi, child, start, end) {
				return
			}
		}
	}
}

// IndexOf locates an attached node.
func (d *Document) IndexOf(n *Node) (Position, bool) {
	for bi, block := range d.Blocks {
		offset := 0
		for _, child := range block.Children {
			if child == n {
				return Position{Block: bi, Offset: offset}, true
			}
			offset += child.Size()
		}
	}
	return Position{}, false
}

func (d *Document) clone() *Document {
	blocks := make([]*Block, len(d.Blocks))
	for i, block := range d.Blocks {
		blocks[i] = block.clone()
	}
	return &Document{
		Blocks:    blocks,
		Pool:      d.Pool.Clone(),
		Markers:   maps.Clone(d.Markers),
		selection: d.selection,
	}
}

// restore rolls the document back to snapshot in place so outstanding
// *Document references stay valid.
func (d *Document) restore(snapshot *Document) {
	d.Blocks = snapshot.Blocks
	*d.Pool = *snapshot.Pool
	d.Markers = snapshot.Markers
	d.selection = snapshot.selection
}
