package ep_urnlink

import (
	"github.com/lexml/urnlink-go/lib/hooks/events"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/plugins/interfaces"
	"github.com/lexml/urnlink-go/lib/view"
)

type EpUrnLinkPlugin struct {
	enabled   bool
	Guard     *UrnGuard
	Highlight *HighlightTracker
}

func (p *EpUrnLinkPlugin) Name() string {
	return "ep_urnlink"
}

func (p *EpUrnLinkPlugin) SetEnabled(enabled bool) {
	p.enabled = enabled
}

func (p *EpUrnLinkPlugin) IsEnabled() bool {
	return p.enabled
}

func (p *EpUrnLinkPlugin) Description() string {
	return "Adds URN links with the urn and unlink commands and highlights the link under the selection"
}

func (p *EpUrnLinkPlugin) Init(store *interfaces.EpPluginStore) {
	store.Logger.Info("Initializing ep_urnlink plugin")
	cfg := store.RetrievedSettings.UrnLink
	key := cfg.AttributeKey

	store.Model.Schema.Extend(model.TextName, key)

	p.Guard = NewUrnGuard(cfg.TrustedScheme, cfg.Placeholder, store.Logger)
	factory := LinkElementFactory{Name: cfg.ElementName, AttributeKey: key, Class: cfg.ElementClass}

	store.Data.Downcast.AttributeToElement(key, LinkPriority, func(value string, w *view.Writer) *view.Element {
		return factory.Create(p.Guard.Sanitize(value), w)
	})
	store.Editing.Downcast.AttributeToElement(key, LinkPriority, func(value string, w *view.Writer) *view.Element {
		return factory.Create(p.Guard.Sanitize(value), w)
	})
	store.Data.Upcast.AttributeToAttribute(key, key, nil)

	store.Commands.Add(NewLinkCommand(store.Model, key, store.Logger))
	store.Commands.Add(NewUnlinkCommand(store.Model, key, store.Logger))

	p.Highlight = NewHighlightTracker(store.Model, key, cfg.HighlightClass, store.Logger)
	store.HookSystem.PrependBeforeRebuildHook(func(ctx *events.BeforeRebuildContext) {
		p.Highlight.Clear(ctx.Writer)
	})
	store.HookSystem.EnqueueAfterRebuildHook(func(ctx *events.AfterRebuildContext) {
		p.Highlight.Mark(ctx.Mapper, ctx.Writer)
	})
}

var _ interfaces.EpPlugin = (*EpUrnLinkPlugin)(nil)
