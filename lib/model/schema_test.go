package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAttributeInSelection(t *testing.T) {
	m, _ := newTestModel()
	doc, schema := m.Document, m.Schema

	testCases := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"caret in paragraph", NewSelection(CollapsedRange(pos(0, 3))), true},
		{"caret in code block", NewSelection(CollapsedRange(pos(1, 3))), false},
		{"range inside code block", NewSelection(NewRange(pos(1, 0), pos(1, 5))), false},
		{"range spanning both", NewSelection(NewRange(pos(0, 12), pos(1, 2))), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schema.CheckAttributeInSelection(doc, tc.sel, "href"))
		})
	}
	assert.False(t, schema.CheckAttributeInSelection(doc, NewSelection(CollapsedRange(pos(0, 3))), "italic"))
}

func TestGetValidRangesSkipsDisallowedParts(t *testing.T) {
	doc := NewDocument(nil)
	doc.AppendBlock("paragraph", doc.NewText("ab"), doc.NewElement("softBreak"), doc.NewText("cd"))
	doc.AppendBlock("codeBlock", doc.NewText("xyz"))
	doc.AppendBlock("paragraph", doc.NewText("tail"))
	schema := testSchema()

	ranges := schema.GetValidRanges(doc, []Range{NewRange(pos(0, 1), pos(2, 2))}, "href")

	assert.Equal(t, []Range{
		NewRange(pos(0, 1), pos(0, 2)),
		NewRange(pos(0, 3), pos(0, 5)),
		NewRange(pos(2, 0), pos(2, 2)),
	}, ranges)
}

func TestGetValidRangesMergesAdjacentNodes(t *testing.T) {
	doc := NewDocument(nil)
	doc.AppendBlock("paragraph", doc.NewText("ab"), doc.NewText("cd", bold()), doc.NewText("ef"))

	ranges := testSchema().GetValidRanges(doc, []Range{NewRange(pos(0, 1), pos(0, 5))}, "href")

	assert.Equal(t, []Range{NewRange(pos(0, 1), pos(0, 5))}, ranges)
}

func TestSelectionNormalizesRanges(t *testing.T) {
	sel := NewSelection(
		NewRange(pos(0, 5), pos(0, 8)),
		NewRange(pos(0, 0), pos(0, 2)),
		NewRange(pos(0, 1), pos(0, 3)),
	)

	assert.Equal(t, []Range{NewRange(pos(0, 0), pos(0, 3)), NewRange(pos(0, 5), pos(0, 8))}, sel.Ranges())
	assert.False(t, sel.IsCollapsed())
	assert.True(t, NewSelection().IsCollapsed())
}

func TestSelectionAttributes(t *testing.T) {
	doc := NewDocument(nil)
	doc.AppendBlock("paragraph",
		doc.NewText("ab", href("urn:a")),
		doc.NewText("cd", href("urn:b")),
		doc.NewElement("softBreak"),
		doc.NewText("ef", bold()),
	)
	m := NewModel(doc, testSchema(), nil, nil)

	testCases := []struct {
		name  string
		sel   Range
		value string
		has   bool
	}{
		{"inside first run", CollapsedRange(pos(0, 1)), "urn:a", true},
		{"boundary prefers the run before", CollapsedRange(pos(0, 2)), "urn:a", true},
		{"block start takes the run after", CollapsedRange(pos(0, 0)), "urn:a", true},
		{"end of second run", CollapsedRange(pos(0, 4)), "urn:b", true},
		{"after inline element falls through to text after", CollapsedRange(pos(0, 5)), "", false},
		{"range takes its first text node", NewRange(pos(0, 3), pos(0, 7)), "urn:b", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := assert.New(t)
			is.NoError(m.Change(func(w *Writer) error { return w.SetSelection(tc.sel) }))
			value, ok := doc.Selection().GetAttribute("href")
			is.Equal(tc.has, ok)
			is.Equal(tc.value, value)
		})
	}
}
