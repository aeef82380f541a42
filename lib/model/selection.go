package model

import (
	"slices"

	"github.com/lexml/urnlink-go/lib/apool"
)

// Selection holds one or more sorted, non-overlapping ranges. It always has
// at least one range; the empty selection is a caret at the document start.
type Selection struct {
	ranges []Range
}

func NewSelection(ranges ...Range) Selection {
	if len(ranges) == 0 {
		return Selection{ranges: []Range{CollapsedRange(Position{})}}
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		return ComparePositions(a.Start, b.Start)
	})
	merged := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Start.IsBefore(last.End) {
			if r.End.IsAfter(last.End) {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return Selection{ranges: merged}
}

// IsCollapsed is true for a single zero-length range.
func (s Selection) IsCollapsed() bool {
	return len(s.ranges) == 1 && s.ranges[0].IsCollapsed()
}

func (s Selection) FirstRange() Range {
	return s.ranges[0]
}

func (s Selection) FirstPosition() Position {
	return s.ranges[0].Start
}

func (s Selection) Ranges() []Range {
	return slices.Clone(s.ranges)
}

func (s Selection) Equal(other Selection) bool {
	return slices.Equal(s.ranges, other.ranges)
}

// DocumentSelection is the live selection of a document. Attribute lookups
// are evaluated at the selection anchor.
type DocumentSelection struct {
	doc *Document
}

func (ds *DocumentSelection) Selection() Selection {
	return ds.doc.selection
}

func (ds *DocumentSelection) IsCollapsed() bool {
	return ds.doc.selection.IsCollapsed()
}

func (ds *DocumentSelection) FirstPosition() Position {
	return ds.doc.selection.FirstPosition()
}

func (ds *DocumentSelection) Ranges() []Range {
	return ds.doc.selection.Ranges()
}

// Attributes returns the attributes the selection carries. A caret takes
// them from the text it is in, else from the text before it, else from the
// text after it. A non-collapsed selection takes them from its first text node.
func (ds *DocumentSelection) Attributes() []apool.Attribute {
	return ds.doc.NodeAttributes(ds.anchorNode())
}

func (ds *DocumentSelection) GetAttribute(key string) (string, bool) {
	return ds.doc.NodeAttribute(ds.anchorNode(), key)
}

func (ds *DocumentSelection) HasAttribute(key string) bool {
	_, ok := ds.GetAttribute(key)
	return ok
}

func (ds *DocumentSelection) anchorNode() *Node {
	doc := ds.doc
	sel := doc.selection
	if sel.IsCollapsed() {
		p := sel.FirstPosition()
		if node := doc.TextNodeAt(p); node != nil {
			return node
		}
		if node := doc.NodeBefore(p); node != nil && node.IsText() {
			return node
		}
		if node := doc.NodeAfter(p); node != nil && node.IsText() {
			return node
		}
		return nil
	}

	var anchor *Node
	for _, r := range sel.ranges {
		doc.Walk(r, func(_ int, node *Node, _, _ int) bool {
			if node.IsText() {
				anchor = node
				return false
			}
			return true
		})
		if anchor != nil {
			break
		}
	}
	return anchor
}
