package ep_urnlink

import (
	"slices"

	"github.com/lexml/urnlink-go/lib/model"
)

// FindLinkRange returns the maximal run of sibling text nodes around
// position whose key attribute equals value. The run never leaves the block
// of position. Without a matching node next to position the result is
// collapsed at position.
func FindLinkRange(doc *model.Document, position model.Position, key, value string) model.Range {
	if doc.CheckPosition(position) != nil {
		return model.CollapsedRange(position)
	}
	return model.NewRange(
		findBound(doc, position, key, value, true),
		findBound(doc, position, key, value, false),
	)
}

func findBound(doc *model.Document, position model.Position, key, value string, lookBack bool) model.Position {
	node := doc.TextNodeAt(position)
	if node == nil {
		if lookBack {
			node = doc.NodeBefore(position)
		} else {
			node = doc.NodeAfter(position)
		}
	}
	if node == nil {
		return position
	}

	children := doc.Blocks[position.Block].Children
	index := slices.Index(children, node)
	last := -1
	for index >= 0 && index < len(children) && hasValue(doc, children[index], key, value) {
		last = index
		if lookBack {
			index--
		} else {
			index++
		}
	}
	if last < 0 {
		return position
	}

	offset := 0
	for _, child := range children[:last] {
		offset += child.Size()
	}
	if !lookBack {
		offset += children[last].Size()
	}
	return model.Position{Block: position.Block, Offset: offset}
}

func hasValue(doc *model.Document, node *model.Node, key, value string) bool {
	if !node.IsText() {
		return false
	}
	current, ok := doc.NodeAttribute(node, key)
	return ok && current == value
}
