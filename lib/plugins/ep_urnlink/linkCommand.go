package ep_urnlink

import (
	"github.com/lexml/urnlink-go/lib/apool"
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/lexml/urnlink-go/lib/model"
	"go.uber.org/zap"
)

const LinkCommandName = "urn"

// LinkCommand sets the link attribute on the selection.
type LinkCommand struct {
	model  *model.Model
	key    string
	state  command.State
	logger *zap.SugaredLogger
}

func NewLinkCommand(m *model.Model, key string, logger *zap.SugaredLogger) *LinkCommand {
	return &LinkCommand{model: m, key: key, logger: logger}
}

func (c *LinkCommand) Name() string {
	return LinkCommandName
}

// Refresh mirrors the attribute found at the selection anchor and whether
// the schema allows the attribute on the selection.
func (c *LinkCommand) Refresh() command.State {
	doc := c.model.Document
	selection := doc.Selection()
	value, ok := selection.GetAttribute(c.key)
	c.state = command.State{
		Value:     value,
		HasValue:  ok,
		IsEnabled: c.model.Schema.CheckAttributeInSelection(doc, selection.Selection(), c.key),
	}
	return c.state
}

func (c *LinkCommand) State() command.State {
	return c.state
}

// Execute applies the first argument as the link value.
//
// A caret inside a link updates the whole link and selects it. A caret
// outside any link inserts the value as linked text and selects it, unless
// the value is empty. A non-collapsed selection gets the value on every part
// the schema allows.
func (c *LinkCommand) Execute(args ...string) error {
	if !c.state.IsEnabled {
		return exception.NewCommandDisabledError(c.Name())
	}
	href := ""
	if len(args) > 0 {
		href = args[0]
	}

	return c.model.Change(func(w *model.Writer) error {
		doc := w.Document()
		selection := doc.Selection()

		if !selection.IsCollapsed() {
			ranges := c.model.Schema.GetValidRanges(doc, selection.Ranges(), c.key)
			for _, r := range ranges {
				if err := w.SetAttribute(c.key, href, r); err != nil {
					return err
				}
			}
			c.logger.Debugw("Link applied to selection", "value", href, "ranges", len(ranges))
			return nil
		}

		position := selection.FirstPosition()
		if current, ok := selection.GetAttribute(c.key); ok {
			linkRange := FindLinkRange(doc, position, c.key, current)
			if err := w.SetAttribute(c.key, href, linkRange); err != nil {
				return err
			}
			c.logger.Debugw("Link updated", "from", current, "to", href, "range", linkRange.String())
			return w.SetSelection(linkRange)
		}

		if href == "" {
			return nil
		}
		attrMap := apool.NewAttributeMap(doc.Pool)
		attrMap.Update(selection.Attributes())
		attrMap.Set(c.key, href)
		node := w.CreateText(href, attrMap.Entries())
		inserted, err := w.Insert(node, position)
		if err != nil {
			return err
		}
		c.logger.Debugw("Linked text inserted", "value", href, "range", inserted.String())
		return w.SetSelection(inserted)
	})
}

var _ command.Command = (*LinkCommand)(nil)
