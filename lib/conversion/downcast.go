package conversion

import (
	"cmp"
	"slices"

	"github.com/lexml/urnlink-go/lib/apool"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/view"
)

// ElementCreator builds the attribute element rendering value. Returning nil
// leaves the text unwrapped.
type ElementCreator func(value string, w *view.Writer) *view.Element

type attributeConverter struct {
	key      string
	priority int
	create   ElementCreator
}

// Downcast turns model blocks into view containers for one pipeline.
type Downcast struct {
	blocks     map[string]string
	inline     map[string]string
	attributes []attributeConverter
	markers    bool
}

func NewDowncast() *Downcast {
	return &Downcast{
		blocks: make(map[string]string),
		inline: make(map[string]string),
	}
}

func (d *Downcast) BlockToElement(modelName, viewName string) *Downcast {
	d.blocks[modelName] = viewName
	return d
}

func (d *Downcast) InlineToElement(modelName, viewName string) *Downcast {
	d.inline[modelName] = viewName
	return d
}

// AttributeToElement wraps text carrying key. Converters with a lower
// priority produce the outer elements.
func (d *Downcast) AttributeToElement(key string, priority int, create ElementCreator) *Downcast {
	d.attributes = append(d.attributes, attributeConverter{key: key, priority: priority, create: create})
	slices.SortStableFunc(d.attributes, func(a, b attributeConverter) int {
		return cmp.Compare(a.priority, b.priority)
	})
	return d
}

// RenderMarkers makes the pipeline emit UI elements at marker boundaries.
func (d *Downcast) RenderMarkers(enabled bool) *Downcast {
	d.markers = enabled
	return d
}

type leaf struct {
	el    *view.Element
	text  bool
	attrs apool.AttributeMap
	start int
	end   int
}

func (l leaf) value(key string) (string, bool) {
	if !l.text {
		return "", false
	}
	return l.attrs.Get(key)
}

type boundary struct {
	offset int
	name   string
}

// ConvertBlock renders block index of doc and binds the result in mapper.
func (d *Downcast) ConvertBlock(doc *model.Document, index int, w *view.Writer, mapper *view.Mapper) *view.Element {
	block := doc.Blocks[index]
	viewName, ok := d.blocks[block.Name]
	if !ok {
		viewName = "div"
	}
	container := w.CreateContainerElement(viewName, nil)
	mapper.BindBlock(index, container)

	leaves := d.leaves(doc, index, w, mapper)
	w.AppendChild(container, d.wrap(leaves, 0, index, w, mapper)...)
	return container
}

func (d *Downcast) leaves(doc *model.Document, index int, w *view.Writer, mapper *view.Mapper) []leaf {
	block := doc.Blocks[index]
	boundaries := d.boundaries(doc, index)
	var leaves []leaf

	emitBoundaries := func(upTo int, inclusive bool) {
		for len(boundaries) > 0 && (boundaries[0].offset < upTo || inclusive && boundaries[0].offset == upTo) {
			b := boundaries[0]
			boundaries = boundaries[1:]
			ui := w.CreateUIElement("span", map[string]string{"data-marker": b.name})
			mapper.BindElement(ui, index, b.offset, b.offset)
			leaves = append(leaves, leaf{el: ui, start: b.offset, end: b.offset})
		}
	}

	offset := 0
	for _, child := range block.Children {
		size := child.Size()
		emitBoundaries(offset, true)
		if !child.IsText() {
			name, ok := d.inline[child.Name]
			if !ok {
				name = child.Name
			}
			el := w.CreateEmptyElement(name, nil)
			mapper.BindElement(el, index, offset, offset+size)
			leaves = append(leaves, leaf{el: el, start: offset, end: offset + size})
			offset += size
			continue
		}

		attrs := apool.FromString(child.Attribs, doc.Pool)
		runes := []rune(child.Data)
		pieceStart := offset
		for pieceStart < offset+size {
			pieceEnd := offset + size
			if len(boundaries) > 0 && boundaries[0].offset > pieceStart && boundaries[0].offset < pieceEnd {
				pieceEnd = boundaries[0].offset
			}
			el := w.CreateText(string(runes[pieceStart-offset : pieceEnd-offset]))
			mapper.BindElement(el, index, pieceStart, pieceEnd)
			leaves = append(leaves, leaf{el: el, text: true, attrs: attrs, start: pieceStart, end: pieceEnd})
			emitBoundaries(pieceEnd, pieceEnd < offset+size)
			pieceStart = pieceEnd
		}
		offset += size
	}
	emitBoundaries(offset, true)
	return leaves
}

// boundaries lists the marker edges inside block index, sorted by offset.
func (d *Downcast) boundaries(doc *model.Document, index int) []boundary {
	if !d.markers {
		return nil
	}
	var out []boundary
	for name, r := range doc.Markers {
		if r.Start.Block == index {
			out = append(out, boundary{offset: r.Start.Offset, name: name + ":start"})
		}
		if r.End.Block == index {
			out = append(out, boundary{offset: r.End.Offset, name: name + ":end"})
		}
	}
	slices.SortFunc(out, func(a, b boundary) int {
		if c := cmp.Compare(a.offset, b.offset); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	return out
}

// wrap groups consecutive text leaves sharing the value of the converter at
// level into one attribute element, then recurses for the next converter.
func (d *Downcast) wrap(items []leaf, level int, index int, w *view.Writer, mapper *view.Mapper) []*view.Element {
	if level == len(d.attributes) {
		out := make([]*view.Element, len(items))
		for i, item := range items {
			out[i] = item.el
		}
		return out
	}

	conv := d.attributes[level]
	var out []*view.Element
	for i := 0; i < len(items); {
		value, ok := items[i].value(conv.key)
		var wrapper *view.Element
		if ok {
			wrapper = conv.create(value, w)
		}
		if wrapper == nil {
			out = append(out, d.wrap(items[i:i+1], level+1, index, w, mapper)...)
			i++
			continue
		}

		j := i + 1
		for j < len(items) {
			next, nextOk := items[j].value(conv.key)
			if !nextOk || next != value {
				break
			}
			j++
		}
		w.AppendChild(wrapper, d.wrap(items[i:j], level+1, index, w, mapper)...)
		mapper.BindElement(wrapper, index, items[i].start, items[j-1].end)
		out = append(out, wrapper)
		i = j
	}
	return out
}
