package ep_urnlink

import (
	"testing"

	"github.com/lexml/urnlink-go/lib/apool"
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/conversion"
	"github.com/lexml/urnlink-go/lib/hooks"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/plugins/interfaces"
	"github.com/lexml/urnlink-go/lib/settings"
	"github.com/lexml/urnlink-go/lib/view"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const linkKey = "xlink:href"

type harness struct {
	hooks    *hooks.Hook
	model    *model.Model
	editing  *conversion.EditingController
	data     *conversion.DataController
	commands *command.Collection
	plugin   *EpUrnLinkPlugin
	states   []*command.StateChange
}

func strongElement(_ string, w *view.Writer) *view.Element {
	return w.CreateAttributeElement("strong", nil, 10)
}

// newHarness loads data into an editor made of a paragraph block, a code
// block rejecting inline attributes, bold text and the link plugin.
func newHarness(t *testing.T, data string) *harness {
	t.Helper()
	return newHarnessWithHooks(t, data, nil)
}

// newHarnessWithHooks lets register add hooks before the plugin is initialised.
func newHarnessWithHooks(t *testing.T, data string, register func(h *hooks.Hook)) *harness {
	t.Helper()
	logger := zap.NewNop().Sugar()
	cfg, err := settings.ReadConfig("{}")
	require.NoError(t, err)

	hookSystem := hooks.NewHook()
	schema := model.NewSchema()
	schema.RegisterBlock("paragraph", model.BlockDefinition{AllowInlineAttributes: true})
	schema.RegisterBlock("codeBlock", model.BlockDefinition{AllowInlineAttributes: false})
	schema.Extend(model.TextName, "bold")

	doc := model.NewDocument(nil)
	doc.AppendBlock("paragraph")
	m := model.NewModel(doc, schema, hookSystem, logger)

	editing := conversion.NewEditingController(m, hookSystem, logger)
	editing.Downcast.BlockToElement("paragraph", "p").
		BlockToElement("codeBlock", "pre").
		AttributeToElement("bold", 10, strongElement)
	dataController := conversion.NewDataController(m, "paragraph", logger)
	dataController.Downcast.BlockToElement("paragraph", "p").
		BlockToElement("codeBlock", "pre").
		AttributeToElement("bold", 10, strongElement)
	dataController.Upcast.ElementToBlock("p", "paragraph").
		ElementToBlock("pre", "codeBlock").
		ElementToAttribute("strong", "bold", "true")

	if register != nil {
		register(hookSystem)
	}

	h := &harness{
		hooks:    hookSystem,
		model:    m,
		editing:  editing,
		data:     dataController,
		commands: command.NewCollection(hookSystem, logger),
		plugin:   &EpUrnLinkPlugin{},
	}
	h.plugin.Init(&interfaces.EpPluginStore{
		Logger:            logger,
		HookSystem:        hookSystem,
		Model:             m,
		Editing:           editing,
		Data:              dataController,
		Commands:          h.commands,
		RetrievedSettings: cfg,
	})
	hookSystem.EnqueueModelChangedHook(func(changes *model.ChangeSet) {
		editing.Convert(changes)
		h.commands.RefreshAll()
	})
	hookSystem.EnqueueCommandStateChangedHook(func(change *command.StateChange) {
		h.states = append(h.states, change)
	})

	editing.RenderAll()
	require.NoError(t, dataController.Set(data))
	return h
}

func (h *harness) doc() *model.Document {
	return h.model.Document
}

func (h *harness) caret(t *testing.T, block, offset int) {
	t.Helper()
	h.selectRanges(t, model.CollapsedRange(model.Position{Block: block, Offset: offset}))
}

func (h *harness) selectRanges(t *testing.T, ranges ...model.Range) {
	t.Helper()
	require.NoError(t, h.model.Change(func(w *model.Writer) error {
		return w.SetSelection(ranges...)
	}))
}

func (h *harness) execute(t *testing.T, name string, args ...string) {
	t.Helper()
	require.NoError(t, h.commands.Execute(name, args...))
}

func (h *harness) viewHTML(t *testing.T) string {
	t.Helper()
	out, err := view.Stringify(h.editing.View.Roots()...)
	require.NoError(t, err)
	return out
}

func (h *harness) dataHTML(t *testing.T) string {
	t.Helper()
	out, err := h.data.Get()
	require.NoError(t, err)
	return out
}

func link(value string) apool.Attribute {
	return apool.Attribute{Key: linkKey, Value: value}
}

func rng(block, start, end int) model.Range {
	return model.NewRange(model.Position{Block: block, Offset: start}, model.Position{Block: block, Offset: end})
}
