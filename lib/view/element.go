package view

import (
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

type Kind uint8

const (
	KindContainer Kind = iota
	KindAttribute
	KindEmpty
	KindUI
	KindText
)

// Capability tags an element with the feature that created it, so features
// can recognise their own elements without inspecting names or attributes.
type Capability uint8

const (
	CapabilityNone Capability = iota
	CapabilityLink
)

// Element is a node of the view tree. Text elements carry Text and no
// children; every other kind carries a Name.
type Element struct {
	ID         string
	Kind       Kind
	Name       string
	Capability Capability
	Priority   int
	Text       string
	Children   []*Element
	Parent     *Element
	attributes map[string]string
	classes    map[string]struct{}
}

func newElement(kind Kind, name string, attrs map[string]string) *Element {
	el := &Element{
		ID:         uuid.NewString(),
		Kind:       kind,
		Name:       name,
		attributes: make(map[string]string),
		classes:    make(map[string]struct{}),
	}
	for key, value := range attrs {
		if key == "class" {
			el.addClasses(value)
			continue
		}
		el.attributes[key] = value
	}
	return el
}

// Is checks the kind and, when given, the element name.
func (e *Element) Is(kind Kind, name ...string) bool {
	if e.Kind != kind {
		return false
	}
	return len(name) == 0 || slices.Contains(name, e.Name)
}

func (e *Element) Attribute(key string) (string, bool) {
	value, ok := e.attributes[key]
	return value, ok
}

func (e *Element) Attributes() map[string]string {
	return maps.Clone(e.attributes)
}

func (e *Element) HasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

func (e *Element) Classes() []string {
	return slices.Sorted(maps.Keys(e.classes))
}

func (e *Element) addClasses(value string) {
	for _, class := range strings.Fields(value) {
		e.classes[class] = struct{}{}
	}
}

// Descendants lists the subtree below e in document order.
func (e *Element) Descendants() []*Element {
	var out []*Element
	for _, child := range e.Children {
		out = append(out, child)
		out = append(out, child.Descendants()...)
	}
	return out
}

// TextContent concatenates the text of the subtree.
func (e *Element) TextContent() string {
	if e.Kind == KindText {
		return e.Text
	}
	var text string
	for _, child := range e.Children {
		text += child.TextContent()
	}
	return text
}
