package view

import (
	"math"

	"github.com/lexml/urnlink-go/lib/model"
)

type span struct {
	block int
	start int
	end   int
}

// Mapper binds view elements to the model offsets they render.
type Mapper struct {
	containers []*Element
	spans      map[*Element]span
}

func NewMapper() *Mapper {
	return &Mapper{spans: make(map[*Element]span)}
}

// BindBlock makes container the view of model block index, dropping the
// bindings of the container it replaces.
func (m *Mapper) BindBlock(block int, container *Element) {
	for len(m.containers) <= block {
		m.containers = append(m.containers, nil)
	}
	if old := m.containers[block]; old != nil && old != container {
		m.unbind(old)
	}
	m.containers[block] = container
	m.spans[container] = span{block: block, start: 0, end: -1}
}

// BindElement records the model offsets [start, end) of block that el renders.
func (m *Mapper) BindElement(el *Element, block, start, end int) {
	m.spans[el] = span{block: block, start: start, end: end}
}

// Truncate forgets every block at or after count.
func (m *Mapper) Truncate(count int) {
	if count >= len(m.containers) {
		return
	}
	for _, container := range m.containers[count:] {
		if container != nil {
			m.unbind(container)
		}
	}
	m.containers = m.containers[:count]
}

func (m *Mapper) ToViewElement(block int) *Element {
	if block < 0 || block >= len(m.containers) {
		return nil
	}
	return m.containers[block]
}

// ModelSpan returns the model offsets an element renders.
func (m *Mapper) ModelSpan(el *Element) (block, start, end int, ok bool) {
	s, ok := m.spans[el]
	return s.block, s.start, s.end, ok
}

// ToViewRange maps a model range to the inline view elements rendering it.
// A zero-width UI element is included only when strictly inside the range,
// so a collapsed range maps to no elements.
func (m *Mapper) ToViewRange(r model.Range) Range {
	var items []*Element
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		container := m.ToViewElement(bi)
		if container == nil {
			continue
		}
		from, to := 0, -1
		if bi == r.Start.Block {
			from = r.Start.Offset
		}
		if bi == r.End.Block {
			to = r.End.Offset
		}
		for _, el := range container.Descendants() {
			s, ok := m.spans[el]
			if !ok {
				continue
			}
			if intersects(s, from, to) {
				items = append(items, el)
			}
		}
	}
	return Range{items: items}
}

func intersects(s span, from, to int) bool {
	if to < 0 {
		to = math.MaxInt
	}
	if s.start == s.end {
		return s.start > from && s.start < to
	}
	if from == to {
		return false
	}
	return s.start < to && from < s.end
}

func (m *Mapper) unbind(el *Element) {
	delete(m.spans, el)
	for _, child := range el.Descendants() {
		delete(m.spans, child)
	}
}

// Range is the view image of a model range.
type Range struct {
	items []*Element
}

func (r Range) Items() []*Element {
	return r.items
}

func (r Range) IsEmpty() bool {
	return len(r.items) == 0
}
