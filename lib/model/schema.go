package model

// BlockDefinition describes a block type registered in the schema.
type BlockDefinition struct {
	// AllowInlineAttributes is false for blocks whose content must stay
	// plain, such as code blocks.
	AllowInlineAttributes bool
}

// Schema decides where inline attributes may be applied.
type Schema struct {
	blocks map[string]BlockDefinition
	inline map[string]map[string]bool
}

func NewSchema() *Schema {
	return &Schema{
		blocks: make(map[string]BlockDefinition),
		inline: map[string]map[string]bool{TextName: {}},
	}
}

func (s *Schema) RegisterBlock(name string, def BlockDefinition) {
	s.blocks[name] = def
}

func (s *Schema) RegisterInline(name string) {
	if _, ok := s.inline[name]; !ok {
		s.inline[name] = make(map[string]bool)
	}
}

func (s *Schema) IsBlock(name string) bool {
	_, ok := s.blocks[name]
	return ok
}

// Extend allows attributes on an inline item; item is TextName or a
// registered inline element name.
func (s *Schema) Extend(item string, allowAttributes ...string) {
	s.RegisterInline(item)
	for _, key := range allowAttributes {
		s.inline[item][key] = true
	}
}

// CheckAttribute reports whether key may be set on node inside block.
func (s *Schema) CheckAttribute(block *Block, node *Node, key string) bool {
	name := TextName
	if !node.IsText() {
		name = node.Name
	}
	return s.checkItem(block.Name, name, key)
}

// CheckTextAttribute reports whether text inside a blockName block may carry key.
func (s *Schema) CheckTextAttribute(blockName, key string) bool {
	return s.checkItem(blockName, TextName, key)
}

func (s *Schema) checkItem(blockName, item, key string) bool {
	def, ok := s.blocks[blockName]
	if !ok || !def.AllowInlineAttributes {
		return false
	}
	return s.inline[item][key]
}

// CheckAttributeInSelection reports whether key may be applied to the
// selection: for a caret, whether text typed there could carry it; otherwise
// whether any selected node could.
func (s *Schema) CheckAttributeInSelection(doc *Document, sel Selection, key string) bool {
	if sel.IsCollapsed() {
		p := sel.FirstPosition()
		if doc.CheckPosition(p) != nil {
			return false
		}
		return s.checkItem(doc.Blocks[p.Block].Name, TextName, key)
	}

	allowed := false
	for _, r := range sel.ranges {
		doc.Walk(r, func(block int, node *Node, _, _ int) bool {
			allowed = s.CheckAttribute(doc.Blocks[block], node, key)
			return !allowed
		})
		if allowed {
			return true
		}
	}
	return false
}

// GetValidRanges splits ranges into the maximal sub-ranges on which key is
// allowed. Disallowed parts are dropped silently; a range never continues
// across a block boundary.
func (s *Schema) GetValidRanges(doc *Document, ranges []Range, key string) []Range {
	var valid []Range
	for _, r := range ranges {
		var current *Range
		doc.Walk(r, func(block int, node *Node, start, end int) bool {
			if !s.CheckAttribute(doc.Blocks[block], node, key) {
				if current != nil {
					valid = append(valid, *current)
					current = nil
				}
				return true
			}
			from := Position{Block: block, Offset: start}
			if current != nil && current.End == from {
				current.End.Offset = end
				return true
			}
			if current != nil {
				valid = append(valid, *current)
			}
			current = &Range{Start: from, End: Position{Block: block, Offset: end}}
			return true
		})
		if current != nil {
			valid = append(valid, *current)
		}
	}
	return valid
}
