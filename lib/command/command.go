package command

// State is an immutable snapshot of a command taken by Refresh.
type State struct {
	Value     string
	HasValue  bool
	IsEnabled bool
}

// Command is an editor action bound to the current selection.
type Command interface {
	Name() string
	// Refresh recomputes the state from the model and returns it.
	Refresh() State
	// State returns the snapshot taken by the last Refresh.
	State() State
	Execute(args ...string) error
}

// StateChange is published under hooks.CommandStateChanged whenever a
// refresh yields a snapshot different from the previous one.
type StateChange struct {
	Command  string
	Previous State
	Current  State
}
