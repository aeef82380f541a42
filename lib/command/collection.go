package command

import (
	"github.com/lexml/urnlink-go/lib/exception"
	"go.uber.org/zap"
)

// StateChangedHook matches hooks.CommandStateChanged.
const StateChangedHook = "commandStateChanged"

// Publisher delivers state changes; *hooks.Hook satisfies it.
type Publisher interface {
	ExecuteHooks(key string, ctx any)
}

// Collection holds the registered commands in registration order.
type Collection struct {
	commands  map[string]Command
	order     []string
	publisher Publisher
	logger    *zap.SugaredLogger
}

func NewCollection(publisher Publisher, logger *zap.SugaredLogger) *Collection {
	return &Collection{
		commands:  make(map[string]Command),
		publisher: publisher,
		logger:    logger,
	}
}

// Add registers cmd under its name, replacing any earlier command of that name.
func (c *Collection) Add(cmd Command) {
	if _, ok := c.commands[cmd.Name()]; !ok {
		c.order = append(c.order, cmd.Name())
	}
	c.commands[cmd.Name()] = cmd
	cmd.Refresh()
}

func (c *Collection) Get(name string) (Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

func (c *Collection) Names() []string {
	return c.order
}

// Execute refreshes the named command and runs it.
func (c *Collection) Execute(name string, args ...string) error {
	cmd, ok := c.commands[name]
	if !ok {
		return exception.NewUnknownCommandError(name)
	}
	cmd.Refresh()
	c.logger.Debugw("Executing command", "command", name, "args", args)
	return cmd.Execute(args...)
}

// RefreshAll refreshes every command and publishes the snapshots that changed.
func (c *Collection) RefreshAll() {
	for _, name := range c.order {
		cmd := c.commands[name]
		previous := cmd.State()
		current := cmd.Refresh()
		if current == previous || c.publisher == nil {
			continue
		}
		c.publisher.ExecuteHooks(StateChangedHook, &StateChange{
			Command:  name,
			Previous: previous,
			Current:  current,
		})
	}
}
