package conversion

import (
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/view"
	"go.uber.org/zap"
)

// DataController converts between the model and its persisted HTML form.
type DataController struct {
	Model    *model.Model
	Downcast *Downcast
	Upcast   *Upcast
	logger   *zap.SugaredLogger
}

func NewDataController(m *model.Model, defaultBlock string, logger *zap.SugaredLogger) *DataController {
	return &DataController{
		Model:    m,
		Downcast: NewDowncast(),
		Upcast:   NewUpcast(defaultBlock),
		logger:   logger,
	}
}

// Get renders the whole document through the data pipeline.
func (c *DataController) Get() (string, error) {
	doc := c.Model.Document
	detached := view.NewDocument()
	mapper := view.NewMapper()
	roots := make([]*view.Element, 0, len(doc.Blocks))
	detached.Change(func(w *view.Writer) {
		for i := range doc.Blocks {
			roots = append(roots, c.Downcast.ConvertBlock(doc, i, w, mapper))
		}
	})
	return view.Stringify(roots...)
}

// Set replaces the document content with data in one change scope.
func (c *DataController) Set(data string) error {
	blocks, err := c.Upcast.Convert(data, c.Model.Document, c.Model.Schema)
	if err != nil {
		return err
	}
	c.logger.Debugw("Loading data", "blocks", len(blocks))
	return c.Model.Change(func(w *model.Writer) error {
		w.ReplaceBlocks(blocks)
		return nil
	})
}
