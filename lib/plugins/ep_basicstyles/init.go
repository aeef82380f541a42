package ep_basicstyles

import (
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/plugins/interfaces"
	"github.com/lexml/urnlink-go/lib/view"
)

const stylePriority = 10

type style struct {
	attribute string
	element   string
	aliases   []string
}

var styles = []style{
	{attribute: "bold", element: "strong", aliases: []string{"b"}},
	{attribute: "italic", element: "em", aliases: []string{"i"}},
}

type EpBasicStylesPlugin struct {
	enabled bool
}

func (p *EpBasicStylesPlugin) Name() string {
	return "ep_basicstyles"
}

func (p *EpBasicStylesPlugin) SetEnabled(enabled bool) {
	p.enabled = enabled
}

func (p *EpBasicStylesPlugin) IsEnabled() bool {
	return p.enabled
}

func (p *EpBasicStylesPlugin) Description() string {
	return "Adds bold and italic text"
}

func (p *EpBasicStylesPlugin) Init(store *interfaces.EpPluginStore) {
	store.Logger.Info("Initializing ep_basicstyles plugin")

	for _, s := range styles {
		store.Model.Schema.Extend(model.TextName, s.attribute)

		create := func(_ string, w *view.Writer) *view.Element {
			return w.CreateAttributeElement(s.element, nil, stylePriority)
		}
		store.Editing.Downcast.AttributeToElement(s.attribute, stylePriority, create)
		store.Data.Downcast.AttributeToElement(s.attribute, stylePriority, create)

		store.Data.Upcast.ElementToAttribute(s.element, s.attribute, "true")
		for _, alias := range s.aliases {
			store.Data.Upcast.ElementToAttribute(alias, s.attribute, "true")
		}

		store.Commands.Add(NewToggleCommand(store.Model, s.attribute, store.Logger))
	}
}

var _ interfaces.EpPlugin = (*EpBasicStylesPlugin)(nil)
