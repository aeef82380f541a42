package ep_heading

import (
	"fmt"

	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/plugins/interfaces"
)

const levels = 3

type EpHeadingsPlugin struct {
	enabled bool
}

func (e *EpHeadingsPlugin) Name() string {
	return "ep_heading"
}

func (e *EpHeadingsPlugin) Description() string {
	return "Adds support for headings"
}

func (e *EpHeadingsPlugin) SetEnabled(enabled bool) {
	e.enabled = enabled
}

func (e *EpHeadingsPlugin) IsEnabled() bool {
	return e.enabled
}

// BlockName returns the model block of heading level, e.g. heading2.
func BlockName(level int) string {
	return fmt.Sprintf("heading%d", level)
}

func (e *EpHeadingsPlugin) Init(store *interfaces.EpPluginStore) {
	store.Logger.Info("Initializing ep_heading plugin")

	for level := 1; level <= levels; level++ {
		name := BlockName(level)
		element := fmt.Sprintf("h%d", level)
		store.Model.Schema.RegisterBlock(name, model.BlockDefinition{AllowInlineAttributes: true})
		store.Editing.Downcast.BlockToElement(name, element)
		store.Data.Downcast.BlockToElement(name, element)
		store.Data.Upcast.ElementToBlock(element, name)
	}

	store.Commands.Add(NewHeadingCommand(store.Model, store.Logger))
}

var _ interfaces.EpPlugin = (*EpHeadingsPlugin)(nil)
