package model

import (
	"maps"
	"slices"

	"github.com/lexml/urnlink-go/lib/apool"
	"github.com/lexml/urnlink-go/lib/exception"
)

// Writer is the only way to mutate a document. It is handed out by
// Model.Change and records what it did for the resulting ChangeSet.
type Writer struct {
	doc        *Document
	changes    []Change
	dirty      map[int]struct{}
	touched    map[int]struct{}
	structural bool
}

func newWriter(doc *Document) *Writer {
	return &Writer{doc: doc, dirty: make(map[int]struct{}), touched: make(map[int]struct{})}
}

func (w *Writer) Document() *Document {
	return w.doc
}

func (w *Writer) CreateText(data string, attrs []apool.Attribute) *Node {
	return w.doc.NewText(data, attrs...)
}

// CreateRangeOn returns the range covering an attached node.
func (w *Writer) CreateRangeOn(n *Node) (Range, error) {
	start, ok := w.doc.IndexOf(n)
	if !ok {
		return Range{}, exception.NewNodeNotFoundError()
	}
	return Range{Start: start, End: Position{Block: start.Block, Offset: start.Offset + n.Size()}}, nil
}

// Insert places node at p and returns the range it now occupies. Positions
// at or after p in the same block move past the inserted content.
func (w *Writer) Insert(n *Node, p Position) (Range, error) {
	if err := w.doc.CheckPosition(p); err != nil {
		return Range{}, err
	}
	block := w.doc.Blocks[p.Block]
	index := block.splitAt(p.Offset)
	block.Children = slices.Insert(block.Children, index, n)

	size := n.Size()
	w.doc.mapPositions(func(pos Position) Position {
		if pos.Block == p.Block && pos.Offset >= p.Offset {
			pos.Offset += size
		}
		return pos
	})

	inserted := Range{Start: p, End: Position{Block: p.Block, Offset: p.Offset + size}}
	w.record(Change{Type: ChangeInsert, Range: inserted}, p.Block)
	return inserted, nil
}

// Remove deletes the content of r. Blocks are never merged; a range spanning
// blocks empties the covered part of each.
func (w *Writer) Remove(r Range) error {
	if err := w.doc.CheckRange(r); err != nil {
		return err
	}
	w.eachBlockSpan(r, func(bi, from, to int) {
		block := w.doc.Blocks[bi]
		start := block.splitAt(from)
		end := block.splitAt(to)
		block.Children = slices.Delete(block.Children, start, end)

		length := to - from
		w.doc.mapPositions(func(pos Position) Position {
			if pos.Block != bi || pos.Offset <= from {
				return pos
			}
			if pos.Offset <= to {
				pos.Offset = from
			} else {
				pos.Offset -= length
			}
			return pos
		})
		w.record(Change{Type: ChangeRemove, Range: Range{
			Start: Position{Block: bi, Offset: from},
			End:   Position{Block: bi, Offset: from},
		}}, bi)
	})
	return nil
}

// SetAttribute sets key to value on every node inside r, splitting text at
// the range boundaries. Schema rules are not consulted here.
func (w *Writer) SetAttribute(key, value string, r Range) error {
	return w.updateAttribute(key, r, func(attrs *apool.AttributeMap) bool {
		if current, ok := attrs.Get(key); ok && current == value {
			return false
		}
		attrs.Set(key, value)
		return true
	}, Change{Type: ChangeAttribute, Key: key, Value: value})
}

func (w *Writer) RemoveAttribute(key string, r Range) error {
	return w.updateAttribute(key, r, func(attrs *apool.AttributeMap) bool {
		if !attrs.Has(key) {
			return false
		}
		attrs.Delete(key)
		return true
	}, Change{Type: ChangeAttribute, Key: key, Removed: true})
}

func (w *Writer) updateAttribute(key string, r Range, update func(attrs *apool.AttributeMap) bool, template Change) error {
	if err := w.doc.CheckRange(r); err != nil {
		return err
	}
	w.eachBlockSpan(r, func(bi, from, to int) {
		block := w.doc.Blocks[bi]
		start := block.splitAt(from)
		end := block.splitAt(to)
		w.touched[bi] = struct{}{}
		changed := false
		for _, child := range block.Children[start:end] {
			attrs := apool.FromString(child.Attribs, w.doc.Pool)
			if update(&attrs) {
				child.Attribs = attrs.String()
				changed = true
			}
		}
		if changed {
			entry := template
			entry.Range = Range{Start: Position{Block: bi, Offset: from}, End: Position{Block: bi, Offset: to}}
			w.record(entry, bi)
		}
	})
	return nil
}

// SetSelection replaces the document selection.
func (w *Writer) SetSelection(ranges ...Range) error {
	for _, r := range ranges {
		if err := w.doc.CheckRange(r); err != nil {
			return err
		}
	}
	next := NewSelection(ranges...)
	if next.Equal(w.doc.selection) {
		return nil
	}
	w.doc.selection = next
	w.changes = append(w.changes, Change{Type: ChangeSelection, Range: next.FirstRange()})
	return nil
}

// InsertBlock adds a block at index, shifting the following blocks.
func (w *Writer) InsertBlock(name string, index int, nodes ...*Node) (*Block, error) {
	if index < 0 || index > len(w.doc.Blocks) {
		return nil, exception.NewInvalidPositionError(index, 0)
	}
	block := &Block{Name: name, Children: nodes}
	w.doc.Blocks = slices.Insert(w.doc.Blocks, index, block)
	w.doc.mapPositions(func(pos Position) Position {
		if pos.Block >= index {
			pos.Block++
		}
		return pos
	})
	w.structural = true
	w.record(Change{Type: ChangeStructure, Range: CollapsedRange(Position{Block: index})}, index)
	return block, nil
}

// RenameBlock changes the type of block index, keeping its content.
func (w *Writer) RenameBlock(index int, name string) error {
	if index < 0 || index >= len(w.doc.Blocks) {
		return exception.NewInvalidPositionError(index, 0)
	}
	block := w.doc.Blocks[index]
	if block.Name == name {
		return nil
	}
	block.Name = name
	w.record(Change{Type: ChangeStructure, Range: CollapsedRange(Position{Block: index}), Value: name}, index)
	return nil
}

// ReplaceBlocks swaps the whole content for blocks. The selection moves to
// the document start and markers are dropped.
func (w *Writer) ReplaceBlocks(blocks []*Block) {
	w.doc.Blocks = blocks
	w.doc.Markers = make(map[string]Range)
	w.doc.selection = NewSelection()
	w.structural = true
	w.changes = append(w.changes,
		Change{Type: ChangeStructure},
		Change{Type: ChangeSelection, Range: w.doc.selection.FirstRange()},
	)
	for i := range blocks {
		w.dirty[i] = struct{}{}
	}
}

func (w *Writer) AddMarker(name string, r Range) error {
	if err := w.doc.CheckRange(r); err != nil {
		return err
	}
	if old, ok := w.doc.Markers[name]; ok {
		w.markBlocks(old)
	}
	w.doc.Markers[name] = r
	w.markBlocks(r)
	w.changes = append(w.changes, Change{Type: ChangeMarker, Range: r, Key: name})
	return nil
}

func (w *Writer) RemoveMarker(name string) {
	old, ok := w.doc.Markers[name]
	if !ok {
		return
	}
	delete(w.doc.Markers, name)
	w.markBlocks(old)
	w.changes = append(w.changes, Change{Type: ChangeMarker, Range: old, Key: name, Removed: true})
}

func (w *Writer) eachBlockSpan(r Range, fn func(block, from, to int)) {
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		from, to := 0, w.doc.Blocks[bi].Size()
		if bi == r.Start.Block {
			from = r.Start.Offset
		}
		if bi == r.End.Block {
			to = r.End.Offset
		}
		if from < to {
			fn(bi, from, to)
		}
	}
}

func (w *Writer) record(change Change, block int) {
	w.changes = append(w.changes, change)
	w.dirty[block] = struct{}{}
}

func (w *Writer) markBlocks(r Range) {
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		w.dirty[bi] = struct{}{}
	}
}

// commit normalizes touched blocks and builds the change set.
func (w *Writer) commit() *ChangeSet {
	maps.Copy(w.touched, w.dirty)
	for bi := range w.touched {
		if bi < len(w.doc.Blocks) {
			w.doc.Blocks[bi].normalize()
		}
	}
	dirty := slices.Sorted(maps.Keys(w.dirty))
	if w.doc.CheckRange(w.doc.selection.FirstRange()) != nil {
		w.doc.selection = NewSelection()
	}
	return &ChangeSet{Changes: w.changes, DirtyBlocks: dirty, Structural: w.structural}
}

// mapPositions moves the selection and markers after a content change.
func (d *Document) mapPositions(fn func(Position) Position) {
	ranges := d.selection.Ranges()
	for i, r := range ranges {
		ranges[i] = NewRange(fn(r.Start), fn(r.End))
	}
	d.selection = NewSelection(ranges...)
	for name, r := range d.Markers {
		d.Markers[name] = NewRange(fn(r.Start), fn(r.End))
	}
}
