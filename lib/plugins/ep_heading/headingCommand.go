package ep_heading

import (
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/lexml/urnlink-go/lib/model"
	"go.uber.org/zap"
)

const (
	CommandName    = "heading"
	ParagraphBlock = "paragraph"
)

// HeadingCommand turns the blocks touched by the selection into the block
// named by its argument. Its value is the type of the anchor block when that
// is a heading.
type HeadingCommand struct {
	model  *model.Model
	state  command.State
	logger *zap.SugaredLogger
}

func NewHeadingCommand(m *model.Model, logger *zap.SugaredLogger) *HeadingCommand {
	return &HeadingCommand{model: m, logger: logger}
}

func (c *HeadingCommand) Name() string {
	return CommandName
}

func (c *HeadingCommand) Refresh() command.State {
	doc := c.model.Document
	p := doc.Selection().FirstPosition()
	c.state = command.State{}
	if doc.CheckPosition(p) != nil {
		return c.state
	}
	name := doc.Blocks[p.Block].Name
	c.state.IsEnabled = name == ParagraphBlock || isHeading(name)
	if isHeading(name) {
		c.state.Value = name
		c.state.HasValue = true
	}
	return c.state
}

func (c *HeadingCommand) State() command.State {
	return c.state
}

func (c *HeadingCommand) Execute(args ...string) error {
	if !c.state.IsEnabled {
		return exception.NewCommandDisabledError(c.Name())
	}
	target := ParagraphBlock
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	if target != ParagraphBlock && !isHeading(target) {
		c.logger.Debugw("Ignoring unknown heading", "target", target)
		return nil
	}

	return c.model.Change(func(w *model.Writer) error {
		for _, r := range w.Document().Selection().Ranges() {
			for block := r.Start.Block; block <= r.End.Block; block++ {
				name := w.Document().Blocks[block].Name
				if name != ParagraphBlock && !isHeading(name) {
					continue
				}
				if err := w.RenameBlock(block, target); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func isHeading(name string) bool {
	for level := 1; level <= levels; level++ {
		if name == BlockName(level) {
			return true
		}
	}
	return false
}

var _ command.Command = (*HeadingCommand)(nil)
