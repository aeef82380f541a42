package ep_codeblock

import (
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/plugins/interfaces"
)

// BlockName is the model block holding preformatted text. Text inside it
// carries no inline attributes.
const BlockName = "codeBlock"

type EpCodeBlockPlugin struct {
	enabled bool
}

func (p *EpCodeBlockPlugin) Name() string {
	return "ep_codeblock"
}

func (p *EpCodeBlockPlugin) SetEnabled(enabled bool) {
	p.enabled = enabled
}

func (p *EpCodeBlockPlugin) IsEnabled() bool {
	return p.enabled
}

func (p *EpCodeBlockPlugin) Description() string {
	return "Adds code blocks that reject inline formatting"
}

func (p *EpCodeBlockPlugin) Init(store *interfaces.EpPluginStore) {
	store.Logger.Info("Initializing ep_codeblock plugin")

	store.Model.Schema.RegisterBlock(BlockName, model.BlockDefinition{AllowInlineAttributes: false})
	store.Editing.Downcast.BlockToElement(BlockName, "pre")
	store.Data.Downcast.BlockToElement(BlockName, "pre")
	store.Data.Upcast.ElementToBlock("pre", BlockName)
}

var _ interfaces.EpPlugin = (*EpCodeBlockPlugin)(nil)
