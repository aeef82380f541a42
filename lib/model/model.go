package model

import "go.uber.org/zap"

// ChangedHook is the hook key under which a committed *ChangeSet is published.
const ChangedHook = "modelChanged"

// Publisher delivers committed change sets; *hooks.Hook satisfies it.
type Publisher interface {
	ExecuteHooks(key string, ctx any)
}

// Model couples a document with its schema and owns the change scope.
type Model struct {
	Document  *Document
	Schema    *Schema
	publisher Publisher
	logger    *zap.SugaredLogger
	writer    *Writer
}

func NewModel(doc *Document, schema *Schema, publisher Publisher, logger *zap.SugaredLogger) *Model {
	if doc == nil {
		doc = NewDocument(nil)
	}
	if schema == nil {
		schema = NewSchema()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Model{
		Document:  doc,
		Schema:    schema,
		publisher: publisher,
		logger:    logger,
	}
}

// Change runs fn inside a change scope. Nested calls join the outermost
// scope. If fn fails every mutation of the scope is rolled back; otherwise
// the resulting ChangeSet is published exactly once.
func (m *Model) Change(fn func(w *Writer) error) error {
	if m.writer != nil {
		return fn(m.writer)
	}

	snapshot := m.Document.clone()
	w := newWriter(m.Document)
	err := func() error {
		m.writer = w
		defer func() { m.writer = nil }()
		return fn(w)
	}()

	if err != nil {
		m.Document.restore(snapshot)
		m.logger.Debugw("Change scope rolled back", "error", err)
		return err
	}

	changes := w.commit()
	if changes.IsEmpty() {
		return nil
	}
	m.logger.Debugw("Change scope committed", "changes", len(changes.Changes), "dirtyBlocks", changes.DirtyBlocks)
	if m.publisher != nil {
		m.publisher.ExecuteHooks(ChangedHook, changes)
	}
	return nil
}
