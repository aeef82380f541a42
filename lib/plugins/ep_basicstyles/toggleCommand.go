package ep_basicstyles

import (
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/lexml/urnlink-go/lib/model"
	"go.uber.org/zap"
)

// ToggleCommand switches a boolean text attribute on the selected ranges.
// Its value is "true" while the selection anchor carries the attribute.
type ToggleCommand struct {
	model  *model.Model
	key    string
	state  command.State
	logger *zap.SugaredLogger
}

func NewToggleCommand(m *model.Model, key string, logger *zap.SugaredLogger) *ToggleCommand {
	return &ToggleCommand{model: m, key: key, logger: logger}
}

func (c *ToggleCommand) Name() string {
	return c.key
}

func (c *ToggleCommand) Refresh() command.State {
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

func (c *ToggleCommand) State() command.State {
	return c.state
}

// Execute removes the attribute when the anchor has it and sets it on the
// allowed parts of the selection otherwise. A caret is left alone.
func (c *ToggleCommand) Execute(_ ...string) error {
	if !c.state.IsEnabled {
		return exception.NewCommandDisabledError(c.Name())
	}

	return c.model.Change(func(w *model.Writer) error {
		doc := w.Document()
		selection := doc.Selection()
		if selection.IsCollapsed() {
			return nil
		}

		if c.state.HasValue {
			for _, r := range selection.Ranges() {
				if err := w.RemoveAttribute(c.key, r); err != nil {
					return err
				}
			}
			return nil
		}
		for _, r := range c.model.Schema.GetValidRanges(doc, selection.Ranges(), c.key) {
			if err := w.SetAttribute(c.key, "true", r); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ command.Command = (*ToggleCommand)(nil)
