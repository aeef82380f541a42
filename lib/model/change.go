package model

import "slices"

type ChangeType uint8

const (
	ChangeInsert ChangeType = iota
	ChangeRemove
	ChangeAttribute
	ChangeSelection
	ChangeMarker
	ChangeStructure
)

func (t ChangeType) String() string {
	switch t {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangeAttribute:
		return "attribute"
	case ChangeSelection:
		return "selection"
	case ChangeMarker:
		return "marker"
	case ChangeStructure:
		return "structure"
	}
	return "unknown"
}

// Change is a single entry recorded by a Writer.
type Change struct {
	Type    ChangeType
	Range   Range
	Key     string
	Value   string
	Removed bool
}

// ChangeSet is everything one change scope did, published once after the
// scope commits.
type ChangeSet struct {
	Changes     []Change
	DirtyBlocks []int
	// Structural is set when blocks were added or removed, which shifts
	// block indexes and invalidates any per-block view state.
	Structural bool
}

func (c *ChangeSet) IsEmpty() bool {
	return len(c.Changes) == 0
}

func (c *ChangeSet) Has(t ChangeType) bool {
	return slices.ContainsFunc(c.Changes, func(ch Change) bool { return ch.Type == t })
}

// SelectionOnly is true when the scope moved the selection and nothing else.
func (c *ChangeSet) SelectionOnly() bool {
	return !c.IsEmpty() && !slices.ContainsFunc(c.Changes, func(ch Change) bool { return ch.Type != ChangeSelection })
}
