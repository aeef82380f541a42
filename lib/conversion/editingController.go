package conversion

import (
	"github.com/lexml/urnlink-go/lib/hooks"
	"github.com/lexml/urnlink-go/lib/hooks/events"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/view"
	"go.uber.org/zap"
)

// EditingController keeps the editing view in sync with the model. Each
// committed change set is one recomputation cycle: BeforeRebuild hooks, the
// rebuild of dirty blocks, then AfterRebuild hooks.
type EditingController struct {
	Model    *model.Model
	View     *view.Document
	Mapper   *view.Mapper
	Downcast *Downcast
	hooks    *hooks.Hook
	logger   *zap.SugaredLogger
}

func NewEditingController(m *model.Model, hookSystem *hooks.Hook, logger *zap.SugaredLogger) *EditingController {
	return &EditingController{
		Model:    m,
		View:     view.NewDocument(),
		Mapper:   view.NewMapper(),
		Downcast: NewDowncast().RenderMarkers(true),
		hooks:    hookSystem,
		logger:   logger,
	}
}

// Convert runs one recomputation cycle for changes.
func (c *EditingController) Convert(changes *model.ChangeSet) {
	c.View.Change(func(w *view.Writer) {
		c.hooks.ExecuteBeforeRebuildHooks(&events.BeforeRebuildContext{
			Changes: changes,
			Writer:  w,
		})

		rebuilt := c.rebuild(changes, w)

		c.hooks.ExecuteAfterRebuildHooks(&events.AfterRebuildContext{
			Changes: changes,
			Model:   c.Model,
			Mapper:  c.Mapper,
			Writer:  w,
		})
		c.logger.Debugw("Editing view converted", "rebuiltBlocks", rebuilt, "changes", len(changes.Changes))
	})
}

// RenderAll rebuilds the whole editing view, e.g. right after start-up.
func (c *EditingController) RenderAll() {
	c.Convert(&model.ChangeSet{
		Changes:    []model.Change{{Type: model.ChangeStructure}},
		Structural: true,
	})
}

func (c *EditingController) rebuild(changes *model.ChangeSet, w *view.Writer) int {
	doc := c.Model.Document
	if changes.Structural || len(c.View.Roots()) != len(doc.Blocks) {
		w.SetRootCount(len(doc.Blocks))
		c.Mapper.Truncate(len(doc.Blocks))
		for i := range doc.Blocks {
			w.ReplaceRoot(i, c.Downcast.ConvertBlock(doc, i, w, c.Mapper))
		}
		return len(doc.Blocks)
	}
	if changes.SelectionOnly() {
		return 0
	}

	rebuilt := 0
	for _, i := range changes.DirtyBlocks {
		if i >= len(doc.Blocks) {
			continue
		}
		w.ReplaceRoot(i, c.Downcast.ConvertBlock(doc, i, w, c.Mapper))
		rebuilt++
	}
	return rebuilt
}
