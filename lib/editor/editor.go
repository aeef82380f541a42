package editor

import (
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/conversion"
	"github.com/lexml/urnlink-go/lib/hooks"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/plugins"
	"github.com/lexml/urnlink-go/lib/plugins/interfaces"
	"github.com/lexml/urnlink-go/lib/settings"
	"github.com/lexml/urnlink-go/lib/view"
	"go.uber.org/zap"
)

const (
	ParagraphBlock = "paragraph"
	SoftBreak      = "softBreak"
)

// Editor owns one document together with its views, commands and plugins.
type Editor struct {
	Settings *settings.Settings
	Logger   *zap.SugaredLogger
	Hooks    *hooks.Hook
	Model    *model.Model
	Editing  *conversion.EditingController
	Data     *conversion.DataController
	Commands *command.Collection
	Plugins  []interfaces.EpPlugin
}

// New builds an editor holding one empty paragraph. Of available, the
// plugins enabled in cfg are initialized; nil means every registered plugin.
func New(cfg *settings.Settings, logger *zap.SugaredLogger, available []interfaces.EpPlugin) *Editor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if available == nil {
		available = plugins.RegisteredPlugins()
	}

	hookSystem := hooks.NewHook()
	schema := model.NewSchema()
	schema.RegisterBlock(ParagraphBlock, model.BlockDefinition{AllowInlineAttributes: true})
	schema.RegisterInline(SoftBreak)

	doc := model.NewDocument(nil)
	doc.AppendBlock(ParagraphBlock)
	m := model.NewModel(doc, schema, hookSystem, logger)

	editing := conversion.NewEditingController(m, hookSystem, logger)
	editing.Downcast.BlockToElement(ParagraphBlock, "p").InlineToElement(SoftBreak, "br")
	data := conversion.NewDataController(m, ParagraphBlock, logger)
	data.Downcast.BlockToElement(ParagraphBlock, "p").InlineToElement(SoftBreak, "br")
	data.Upcast.ElementToBlock("p", ParagraphBlock).ElementToInline("br", SoftBreak)

	e := &Editor{
		Settings: cfg,
		Logger:   logger,
		Hooks:    hookSystem,
		Model:    m,
		Editing:  editing,
		Data:     data,
		Commands: command.NewCollection(hookSystem, logger),
	}

	e.Plugins = plugins.InitPlugins(&interfaces.EpPluginStore{
		Logger:            logger,
		HookSystem:        hookSystem,
		Model:             m,
		Editing:           editing,
		Data:              data,
		Commands:          e.Commands,
		RetrievedSettings: cfg,
	}, available)

	hookSystem.EnqueueModelChangedHook(func(changes *model.ChangeSet) {
		e.Editing.Convert(changes)
		e.Commands.RefreshAll()
	})
	e.Editing.RenderAll()
	e.Commands.RefreshAll()
	return e
}

// Execute runs a registered command.
func (e *Editor) Execute(name string, args ...string) error {
	return e.Commands.Execute(name, args...)
}

func (e *Editor) SetData(data string) error {
	return e.Data.Set(data)
}

func (e *Editor) GetData() (string, error) {
	return e.Data.Get()
}

// SetSelection moves the selection in its own change scope.
func (e *Editor) SetSelection(ranges ...model.Range) error {
	return e.Model.Change(func(w *model.Writer) error {
		return w.SetSelection(ranges...)
	})
}

// ViewHTML renders the editing view.
func (e *Editor) ViewHTML() (string, error) {
	return view.Stringify(e.Editing.View.Roots()...)
}
