package model

import "fmt"

// Position points between two inline nodes of a block, or inside a text node.
// Offset counts runes; an inline element occupies exactly one offset.
type Position struct {
	Block  int
	Offset int
}

// ComparePositions orders positions in document order.
func ComparePositions(a, b Position) int {
	if a.Block < b.Block {
		return -1
	}
	if a.Block > b.Block {
		return 1
	}
	if a.Offset < b.Offset {
		return -1
	}
	if a.Offset > b.Offset {
		return 1
	}
	return 0
}

func (p Position) IsBefore(other Position) bool {
	return ComparePositions(p, other) < 0
}

func (p Position) IsAfter(other Position) bool {
	return ComparePositions(p, other) > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Block, p.Offset)
}
