package ep_urnlink

import (
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/lexml/urnlink-go/lib/model"
	"go.uber.org/zap"
)

const UnlinkCommandName = "unlink"

// UnlinkCommand removes the link attribute.
type UnlinkCommand struct {
	model  *model.Model
	key    string
	state  command.State
	logger *zap.SugaredLogger
}

func NewUnlinkCommand(m *model.Model, key string, logger *zap.SugaredLogger) *UnlinkCommand {
	return &UnlinkCommand{model: m, key: key, logger: logger}
}

func (c *UnlinkCommand) Name() string {
	return UnlinkCommandName
}

func (c *UnlinkCommand) Refresh() command.State {
	c.state = command.State{IsEnabled: c.model.Document.Selection().HasAttribute(c.key)}
	return c.state
}

func (c *UnlinkCommand) State() command.State {
	return c.state
}

// Execute removes the whole link around a caret, or the attribute from
// every selected range. The selection is left untouched.
func (c *UnlinkCommand) Execute(_ ...string) error {
	if !c.state.IsEnabled {
		return exception.NewCommandDisabledError(c.Name())
	}

	return c.model.Change(func(w *model.Writer) error {
		doc := w.Document()
		selection := doc.Selection()

		ranges := selection.Ranges()
		if selection.IsCollapsed() {
			value, _ := selection.GetAttribute(c.key)
			ranges = []model.Range{FindLinkRange(doc, selection.FirstPosition(), c.key, value)}
		}
		for _, r := range ranges {
			if err := w.RemoveAttribute(c.key, r); err != nil {
				return err
			}
		}
		c.logger.Debugw("Link removed", "ranges", len(ranges))
		return nil
	})
}

var _ command.Command = (*UnlinkCommand)(nil)
