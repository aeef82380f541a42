package view

import "slices"

// Writer creates and mutates view elements. It is only available inside
// Document.Change.
type Writer struct {
	doc *Document
}

func (w *Writer) CreateContainerElement(name string, attrs map[string]string) *Element {
	return newElement(KindContainer, name, attrs)
}

// CreateAttributeElement creates an inline wrapper. Elements with a lower
// priority wrap those with a higher one.
func (w *Writer) CreateAttributeElement(name string, attrs map[string]string, priority int) *Element {
	el := newElement(KindAttribute, name, attrs)
	el.Priority = priority
	return el
}

func (w *Writer) CreateEmptyElement(name string, attrs map[string]string) *Element {
	return newElement(KindEmpty, name, attrs)
}

// CreateUIElement creates an element that has no model counterpart, such as
// a marker boundary.
func (w *Writer) CreateUIElement(name string, attrs map[string]string) *Element {
	return newElement(KindUI, name, attrs)
}

func (w *Writer) CreateText(data string) *Element {
	el := newElement(KindText, "", nil)
	el.Text = data
	return el
}

func (w *Writer) SetCapability(capability Capability, el *Element) {
	el.Capability = capability
}

func (w *Writer) AppendChild(parent *Element, children ...*Element) {
	for _, child := range children {
		child.Parent = parent
		parent.Children = append(parent.Children, child)
	}
}

func (w *Writer) AddClass(class string, el *Element) {
	if el.HasClass(class) {
		return
	}
	el.classes[class] = struct{}{}
	w.doc.record(ClassAdded, el, class)
}

func (w *Writer) RemoveClass(class string, el *Element) {
	if !el.HasClass(class) {
		return
	}
	delete(el.classes, class)
	w.doc.record(ClassRemoved, el, class)
}

func (w *Writer) SetAttribute(key, value string, el *Element) {
	if key == "class" {
		el.addClasses(value)
	} else {
		el.attributes[key] = value
	}
	w.doc.record(AttributeSet, el, key)
}

// ReplaceRoot puts root at index, detaching whatever was there. Index may
// equal the current root count to append.
func (w *Writer) ReplaceRoot(index int, root *Element) {
	if index == len(w.doc.roots) {
		w.doc.roots = append(w.doc.roots, root)
	} else {
		w.doc.roots[index] = root
	}
	w.doc.record(RootReplaced, root, "")
}

// SetRootCount trims or pads the root list after blocks were added or
// removed; padded slots stay nil until replaced.
func (w *Writer) SetRootCount(count int) {
	if count <= len(w.doc.roots) {
		w.doc.roots = w.doc.roots[:count]
		return
	}
	w.doc.roots = slices.Grow(w.doc.roots, count-len(w.doc.roots))
	for len(w.doc.roots) < count {
		w.doc.roots = append(w.doc.roots, nil)
	}
}
