package model

import "fmt"

// Range is a half-open span [Start, End) with Start <= End in document order.
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a range from two positions given in any order.
func NewRange(a, b Position) Range {
	if ComparePositions(a, b) <= 0 {
		return Range{Start: a, End: b}
	}
	return Range{Start: b, End: a}
}

func CollapsedRange(p Position) Range {
	return Range{Start: p, End: p}
}

func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start, r.End)
}
