package model

import (
	"errors"
	"testing"

	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() (*Model, *recordingPublisher) {
	publisher := &recordingPublisher{}
	doc := NewDocument(nil)
	doc.AppendBlock("paragraph",
		doc.NewText("click "),
		doc.NewText("here", href("urn:lex:br:x")),
		doc.NewText(" now"),
	)
	doc.AppendBlock("codeBlock", doc.NewText("plain"))
	return NewModel(doc, testSchema(), publisher, nil), publisher
}

func TestAppendBlockMergesEqualText(t *testing.T) {
	doc := NewDocument(nil)
	block := doc.AppendBlock("paragraph", doc.NewText("a"), doc.NewText("b"), doc.NewText("", bold()))

	require.Len(t, block.Children, 1)
	assert.Equal(t, "ab", block.Children[0].Data)
}

func TestPositionQueries(t *testing.T) {
	m, _ := newTestModel()
	doc := m.Document

	assert.Nil(t, doc.TextNodeAt(pos(0, 6)))
	assert.Equal(t, "here", doc.TextNodeAt(pos(0, 8)).Data)
	assert.Equal(t, "click ", doc.NodeBefore(pos(0, 6)).Data)
	assert.Equal(t, "here", doc.NodeAfter(pos(0, 6)).Data)
	assert.Nil(t, doc.NodeBefore(pos(0, 0)))
	assert.Nil(t, doc.NodeAfter(pos(0, 14)))
	assert.Error(t, doc.CheckPosition(pos(0, 15)))
	assert.Error(t, doc.CheckPosition(pos(2, 0)))
}

func TestSetAttributeSplitsAndMerges(t *testing.T) {
	m, publisher := newTestModel()

	err := m.Change(func(w *Writer) error {
		return w.SetAttribute("href", "urn:lex:br:x", NewRange(pos(0, 2), pos(0, 6)))
	})
	require.NoError(t, err)

	block := m.Document.Blocks[0]
	require.Len(t, block.Children, 3)
	assert.Equal(t, "cl", block.Children[0].Data)
	assert.Equal(t, "ick here", block.Children[1].Data)
	value, ok := m.Document.NodeAttribute(block.Children[1], "href")
	require.True(t, ok)
	assert.Equal(t, "urn:lex:br:x", value)

	require.Len(t, publisher.published, 1)
	assert.True(t, publisher.published[0].Has(ChangeAttribute))
	assert.Equal(t, []int{0}, publisher.published[0].DirtyBlocks)
}

func TestSetAttributeWithSameValueIsNotAChange(t *testing.T) {
	m, publisher := newTestModel()

	err := m.Change(func(w *Writer) error {
		return w.SetAttribute("href", "urn:lex:br:x", NewRange(pos(0, 6), pos(0, 10)))
	})
	require.NoError(t, err)
	assert.Empty(t, publisher.published)
}

func TestRemoveAttribute(t *testing.T) {
	m, _ := newTestModel()

	require.NoError(t, m.Change(func(w *Writer) error {
		return w.RemoveAttribute("href", NewRange(pos(0, 0), pos(0, 14)))
	}))

	block := m.Document.Blocks[0]
	require.Len(t, block.Children, 1)
	assert.Equal(t, "click here now", block.Children[0].Data)
}

func TestInsertShiftsSelectionAndReturnsRange(t *testing.T) {
	m, _ := newTestModel()
	require.NoError(t, m.Change(func(w *Writer) error {
		return w.SetSelection(CollapsedRange(pos(0, 12)))
	}))

	var inserted Range
	require.NoError(t, m.Change(func(w *Writer) error {
		var err error
		inserted, err = w.Insert(w.CreateText("ab", nil), pos(0, 3))
		return err
	}))

	assert.Equal(t, NewRange(pos(0, 3), pos(0, 5)), inserted)
	assert.Equal(t, pos(0, 14), m.Document.Selection().FirstPosition())
	assert.Equal(t, "cliabck here now", m.Document.Blocks[0].Text())
}

func TestRemoveContent(t *testing.T) {
	m, _ := newTestModel()
	require.NoError(t, m.Change(func(w *Writer) error {
		if err := w.SetSelection(CollapsedRange(pos(0, 12))); err != nil {
			return err
		}
		return w.Remove(NewRange(pos(0, 4), pos(0, 8)))
	}))

	assert.Equal(t, "clicre now", m.Document.Blocks[0].Text())
	assert.Equal(t, pos(0, 8), m.Document.Selection().FirstPosition())
}

func TestChangeRollsBackOnError(t *testing.T) {
	m, publisher := newTestModel()
	before := m.Document.Text()
	boom := errors.New("boom")

	err := m.Change(func(w *Writer) error {
		require.NoError(t, w.SetAttribute("bold", "true", NewRange(pos(0, 0), pos(0, 14))))
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, before, m.Document.Text())
	assert.False(t, m.Document.Selection().HasAttribute("bold"))
	for _, child := range m.Document.Blocks[0].Children {
		_, ok := m.Document.NodeAttribute(child, "bold")
		assert.False(t, ok)
	}
	assert.Empty(t, publisher.published)
}

func TestNestedChangeJoinsOuterScope(t *testing.T) {
	m, publisher := newTestModel()

	require.NoError(t, m.Change(func(w *Writer) error {
		if err := w.SetAttribute("bold", "true", NewRange(pos(0, 0), pos(0, 2))); err != nil {
			return err
		}
		return m.Change(func(inner *Writer) error {
			assert.Same(t, w, inner)
			return inner.SetSelection(CollapsedRange(pos(0, 1)))
		})
	}))

	require.Len(t, publisher.published, 1)
	assert.True(t, publisher.published[0].Has(ChangeSelection))
	assert.True(t, publisher.published[0].Has(ChangeAttribute))
}

func TestInvalidRangeIsRejected(t *testing.T) {
	m, _ := newTestModel()

	err := m.Change(func(w *Writer) error {
		return w.SetAttribute("bold", "true", NewRange(pos(0, 0), pos(0, 99)))
	})

	var invalid *exception.InvalidPositionError
	require.ErrorAs(t, err, &invalid)
}

func TestCreateRangeOn(t *testing.T) {
	m, _ := newTestModel()
	require.NoError(t, m.Change(func(w *Writer) error {
		node := w.Document().Blocks[0].Children[1]
		r, err := w.CreateRangeOn(node)
		require.NoError(t, err)
		assert.Equal(t, NewRange(pos(0, 6), pos(0, 10)), r)

		_, err = w.CreateRangeOn(w.CreateText("detached", nil))
		var notFound *exception.NodeNotFoundError
		assert.ErrorAs(t, err, &notFound)
		return nil
	}))
}

func TestMarkersFollowContent(t *testing.T) {
	m, publisher := newTestModel()
	require.NoError(t, m.Change(func(w *Writer) error {
		return w.AddMarker("comment:1", NewRange(pos(0, 7), pos(0, 9)))
	}))
	require.NoError(t, m.Change(func(w *Writer) error {
		_, err := w.Insert(w.CreateText(">>", nil), pos(0, 0))
		return err
	}))

	assert.Equal(t, NewRange(pos(0, 9), pos(0, 11)), m.Document.Markers["comment:1"])
	assert.True(t, publisher.published[0].Has(ChangeMarker))

	require.NoError(t, m.Change(func(w *Writer) error {
		w.RemoveMarker("comment:1")
		w.RemoveMarker("missing")
		return nil
	}))
	assert.NotContains(t, m.Document.Markers, "comment:1")
	require.Len(t, publisher.published, 3)
	removed := publisher.published[2]
	require.Len(t, removed.Changes, 1)
	assert.True(t, removed.Changes[0].Removed)
	assert.Equal(t, []int{0}, removed.DirtyBlocks)
}

func TestSelectionOnlyChangeSet(t *testing.T) {
	m, publisher := newTestModel()
	require.NoError(t, m.Change(func(w *Writer) error {
		return w.SetSelection(CollapsedRange(pos(0, 2)))
	}))
	require.NoError(t, m.Change(func(w *Writer) error {
		return w.SetAttribute("bold", "true", NewRange(pos(0, 0), pos(0, 2)))
	}))

	require.Len(t, publisher.published, 2)
	assert.True(t, publisher.published[0].SelectionOnly())
	assert.Empty(t, publisher.published[0].DirtyBlocks)
	assert.False(t, publisher.published[1].SelectionOnly())
}

func TestInsertBlockShiftsPositions(t *testing.T) {
	m, publisher := newTestModel()
	require.NoError(t, m.Change(func(w *Writer) error {
		if err := w.SetSelection(CollapsedRange(pos(1, 2))); err != nil {
			return err
		}
		_, err := w.InsertBlock("paragraph", 1, w.CreateText("new", nil))
		return err
	}))

	assert.Equal(t, pos(2, 2), m.Document.Selection().FirstPosition())
	assert.Equal(t, "new", m.Document.Blocks[1].Text())
	assert.True(t, publisher.published[0].Structural)
}

func TestRenameBlock(t *testing.T) {
	m, publisher := newTestModel()
	require.NoError(t, m.Change(func(w *Writer) error {
		return w.RenameBlock(1, "paragraph")
	}))

	assert.Equal(t, "paragraph", m.Document.Blocks[1].Name)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, []int{1}, publisher.published[0].DirtyBlocks)
	assert.False(t, publisher.published[0].Structural)

	err := m.Change(func(w *Writer) error {
		return w.RenameBlock(5, "paragraph")
	})
	var invalid *exception.InvalidPositionError
	assert.True(t, errors.As(err, &invalid))
}
