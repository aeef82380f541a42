package ep_urnlink

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/lexml/urnlink-go/lib/apool"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bold() apool.Attribute {
	return apool.Attribute{Key: "bold", Value: "true"}
}

func locatorDoc() *model.Document {
	doc := model.NewDocument(nil)
	doc.AppendBlock("paragraph",
		doc.NewText("ab", link("x")),
		doc.NewText("cd", link("x"), bold()),
		doc.NewText("ef", link("y")),
		doc.NewText("gh"),
		doc.NewElement("softBreak", link("y")),
		doc.NewText("ij", link("y")),
	)
	doc.AppendBlock("paragraph", doc.NewText("kl", link("y")))
	return doc
}

func TestFindLinkRange(t *testing.T) {
	doc := locatorDoc()
	testCases := []struct {
		name     string
		offset   int
		value    string
		expected model.Range
	}{
		{name: "inside first node", offset: 1, value: "x", expected: rng(0, 0, 4)},
		{name: "between nodes of one run", offset: 2, value: "x", expected: rng(0, 0, 4)},
		{name: "inside second node", offset: 3, value: "x", expected: rng(0, 0, 4)},
		{name: "end of run takes the run before", offset: 4, value: "x", expected: rng(0, 0, 4)},
		{name: "start of run takes the run after", offset: 4, value: "y", expected: rng(0, 4, 6)},
		{name: "inline element stops the walk", offset: 10, value: "y", expected: rng(0, 9, 11)},
		{name: "block end never crosses into the next block", offset: 11, value: "y", expected: rng(0, 9, 11)},
		{name: "no matching neighbour", offset: 7, value: "x", expected: rng(0, 7, 7)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindLinkRange(doc, model.Position{Block: 0, Offset: tc.offset}, linkKey, tc.value)
			assert.True(t, cmp.Equal(tc.expected, got), cmp.Diff(tc.expected, got))
		})
	}
}

func TestFindLinkRangeStaysInBlock(t *testing.T) {
	doc := locatorDoc()
	got := FindLinkRange(doc, model.Position{Block: 1, Offset: 0}, linkKey, "y")
	assert.Equal(t, rng(1, 0, 2), got)
}

func TestFindLinkRangeInvalidPosition(t *testing.T) {
	doc := locatorDoc()
	p := model.Position{Block: 4, Offset: 1}
	assert.Equal(t, model.CollapsedRange(p), FindLinkRange(doc, p, linkKey, "y"))
}

// randomRunDoc builds one paragraph from random words, each linked to one of
// a few values or unlinked, some of them bold, and returns the link value of
// every rune.
func randomRunDoc() (*model.Document, []string) {
	values := []string{"urn:lex:br:a", "urn:lex:br:b", ""}
	doc := model.NewDocument(nil)
	var nodes []*model.Node
	var perRune []string
	for range gofakeit.IntRange(1, 12) {
		word := gofakeit.Word()
		value := gofakeit.RandomString(values)
		var attrs []apool.Attribute
		if value != "" {
			attrs = append(attrs, link(value))
		}
		if gofakeit.Bool() {
			attrs = append(attrs, bold())
		}
		nodes = append(nodes, doc.NewText(word, attrs...))
		for range []rune(word) {
			perRune = append(perRune, value)
		}
	}
	doc.AppendBlock("paragraph", nodes...)
	return doc, perRune
}

func TestFindLinkRangeReturnsMaximalRun(t *testing.T) {
	for i := 0; i < 50; i++ {
		doc, perRune := randomRunDoc()
		for offset := 1; offset < len(perRune); offset++ {
			value := perRune[offset]
			if value == "" || perRune[offset-1] != value {
				continue
			}

			start, end := offset, offset
			for start > 0 && perRune[start-1] == value {
				start--
			}
			for end < len(perRune) && perRune[end] == value {
				end++
			}

			got := FindLinkRange(doc, model.Position{Block: 0, Offset: offset}, linkKey, value)
			require.Equal(t, rng(0, start, end), got, "offset %d in %q", offset, doc.Text())
		}
	}
}

func TestApplyingSameValueKeepsBoundaries(t *testing.T) {
	doc, perRune := randomRunDoc()
	m := model.NewModel(doc, nil, nil, nil)
	for offset := 1; offset < len(perRune); offset++ {
		value := perRune[offset]
		if value == "" || perRune[offset-1] != value {
			continue
		}
		p := model.Position{Block: 0, Offset: offset}
		before := FindLinkRange(doc, p, linkKey, value)
		require.NoError(t, m.Change(func(w *model.Writer) error {
			return w.SetAttribute(linkKey, value, before)
		}))
		assert.Equal(t, before, FindLinkRange(doc, p, linkKey, value))
	}
}
