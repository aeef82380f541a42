package view

type MutationOp uint8

const (
	ClassAdded MutationOp = iota
	ClassRemoved
	AttributeSet
	RootReplaced
)

// Mutation is one recorded write to the view.
type Mutation struct {
	Op        MutationOp
	ElementID string
	Key       string
}

// Document holds one root container per model block and the log of every
// mutation applied to it.
type Document struct {
	roots     []*Element
	mutations []Mutation
	writer    *Writer
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Roots() []*Element {
	return d.roots
}

// Change runs fn with the view writer. Nested calls share the writer.
func (d *Document) Change(fn func(w *Writer)) {
	if d.writer != nil {
		fn(d.writer)
		return
	}
	d.writer = &Writer{doc: d}
	defer func() { d.writer = nil }()
	fn(d.writer)
}

func (d *Document) Mutations() []Mutation {
	return d.mutations
}

func (d *Document) ResetMutations() {
	d.mutations = nil
}

// Contains reports whether el is part of the current tree.
func (d *Document) Contains(el *Element) bool {
	root := el
	for root.Parent != nil {
		root = root.Parent
	}
	for _, r := range d.roots {
		if r == root {
			return true
		}
	}
	return false
}

func (d *Document) record(op MutationOp, el *Element, key string) {
	d.mutations = append(d.mutations, Mutation{Op: op, ElementID: el.ID, Key: key})
}
