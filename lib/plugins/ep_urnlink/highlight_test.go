package ep_urnlink

import (
	"testing"

	"github.com/lexml/urnlink-go/lib/hooks"
	"github.com/lexml/urnlink-go/lib/hooks/events"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const highlightClass = "ck-link_selected"

const twoLinks = `<p>one <span xlink:href="urn:lex:br:a">two</span> three <span xlink:href="urn:lex:br:b">four</span></p>`

func classMutations(doc *view.Document) []view.Mutation {
	var out []view.Mutation
	for _, m := range doc.Mutations() {
		if m.Op == view.ClassAdded || m.Op == view.ClassRemoved {
			if m.Key == highlightClass {
				out = append(out, m)
			}
		}
	}
	return out
}

func TestHighlightFollowsSelection(t *testing.T) {
	h := newHarness(t, twoLinks)
	tracker := h.plugin.Highlight

	h.caret(t, 0, 5)
	require.Len(t, tracker.Highlighted(), 1)
	first := tracker.Highlighted()[0]
	assert.Equal(t, "two", first.TextContent())
	assert.Equal(t,
		`<p>one <span class="ck-link_selected lexml-url" xlink:href="urn:lex:br:a">two</span> three <span class="lexml-url" xlink:href="urn:lex:br:b">four</span></p>`,
		h.viewHTML(t))

	h.editing.View.ResetMutations()
	h.caret(t, 0, 16)
	require.Len(t, tracker.Highlighted(), 1)
	second := tracker.Highlighted()[0]
	assert.Equal(t, "four", second.TextContent())
	assert.False(t, first.HasClass(highlightClass))
	assert.Equal(t, []view.Mutation{
		{Op: view.ClassRemoved, ElementID: first.ID, Key: highlightClass},
		{Op: view.ClassAdded, ElementID: second.ID, Key: highlightClass},
	}, classMutations(h.editing.View))

	h.editing.View.ResetMutations()
	h.caret(t, 0, 10)
	assert.Empty(t, tracker.Highlighted())
	assert.Equal(t, []view.Mutation{
		{Op: view.ClassRemoved, ElementID: second.ID, Key: highlightClass},
	}, classMutations(h.editing.View))
	assert.NotContains(t, h.viewHTML(t), highlightClass)
}

func TestHighlightCoversLinkSplitByMarker(t *testing.T) {
	h := newHarness(t, twoLinks)
	require.NoError(t, h.model.Change(func(w *model.Writer) error {
		return w.AddMarker("comment", rng(0, 5, 10))
	}))

	h.editing.View.ResetMutations()
	h.caret(t, 0, 6)

	marked := h.plugin.Highlight.Highlighted()
	require.Len(t, marked, 2)
	assert.Equal(t, "t", marked[0].TextContent())
	assert.Equal(t, "wo", marked[1].TextContent())
	assert.Len(t, classMutations(h.editing.View), 2)
	for _, el := range marked {
		assert.True(t, h.editing.View.Contains(el))
		assert.True(t, el.HasClass(highlightClass))
	}
}

func TestHighlightIsRebuiltAfterContentChange(t *testing.T) {
	h := newHarness(t, twoLinks)
	h.caret(t, 0, 5)
	before := h.plugin.Highlight.Highlighted()[0]

	h.execute(t, LinkCommandName, "urn:lex:br:c")

	marked := h.plugin.Highlight.Highlighted()
	require.Len(t, marked, 1)
	assert.NotSame(t, before, marked[0])
	assert.True(t, h.editing.View.Contains(marked[0]))
	assert.False(t, h.editing.View.Contains(before))
	assert.False(t, before.HasClass(highlightClass))
	value, _ := marked[0].Attribute(linkKey)
	assert.Equal(t, "urn:lex:br:c", value)
}

func TestHighlightClearedBeforeEarlierViewHooks(t *testing.T) {
	var h *harness
	var seen []int
	h = newHarnessWithHooks(t, twoLinks, func(hookSystem *hooks.Hook) {
		hookSystem.EnqueueBeforeRebuildHook(func(ctx *events.BeforeRebuildContext) {
			if h != nil {
				seen = append(seen, len(h.plugin.Highlight.Highlighted()))
			}
		})
	})

	h.caret(t, 0, 5)
	require.Len(t, h.plugin.Highlight.Highlighted(), 1)
	h.caret(t, 0, 1)

	assert.Equal(t, []int{0, 0}, seen)
}

func TestHighlightMarksEachElementOnce(t *testing.T) {
	h := newHarness(t, twoLinks)
	h.caret(t, 0, 5)

	h.editing.View.Change(func(w *view.Writer) {
		assert.Zero(t, h.plugin.Highlight.Mark(h.editing.Mapper, w))
	})
	assert.Len(t, h.plugin.Highlight.Highlighted(), 1)
}

func TestEditingViewRendersSafeValues(t *testing.T) {
	h := newHarness(t, `<p>a <span xlink:href="javascript:alert(1)">x</span></p>`)

	assert.Equal(t, `<p>a <span class="lexml-url" xlink:href="#">x</span></p>`, h.viewHTML(t))
	value, ok := h.doc().NodeAttribute(h.doc().Blocks[0].Children[1], linkKey)
	require.True(t, ok)
	assert.Equal(t, "javascript:alert(1)", value)
}

func TestCaretAtBlockStartHighlightsFollowingLink(t *testing.T) {
	h := newHarness(t, `<p><span xlink:href="urn:lex:br:a">ab</span> c</p><p>d</p>`)

	h.caret(t, 1, 0)
	assert.Empty(t, h.plugin.Highlight.Highlighted())

	h.caret(t, 0, 0)
	require.Len(t, h.plugin.Highlight.Highlighted(), 1)
	assert.Equal(t,
		`<p><span class="ck-link_selected lexml-url" xlink:href="urn:lex:br:a">ab</span> c</p><p>d</p>`,
		h.viewHTML(t))
}
