package command

import (
	"errors"
	"testing"

	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCommand struct {
	name     string
	next     State
	state    State
	executed [][]string
}

func (f *fakeCommand) Name() string { return f.name }

func (f *fakeCommand) Refresh() State {
	f.state = f.next
	return f.state
}

func (f *fakeCommand) State() State { return f.state }

func (f *fakeCommand) Execute(args ...string) error {
	if !f.state.IsEnabled {
		return exception.NewCommandDisabledError(f.name)
	}
	f.executed = append(f.executed, args)
	return nil
}

type recordingPublisher struct {
	changes []*StateChange
}

func (r *recordingPublisher) ExecuteHooks(key string, ctx any) {
	if key == StateChangedHook {
		r.changes = append(r.changes, ctx.(*StateChange))
	}
}

func TestRefreshAllPublishesOnlyChangedSnapshots(t *testing.T) {
	publisher := &recordingPublisher{}
	commands := NewCollection(publisher, zap.NewNop().Sugar())
	link := &fakeCommand{name: "urn"}
	unlink := &fakeCommand{name: "unlink"}
	commands.Add(link)
	commands.Add(unlink)

	commands.RefreshAll()
	assert.Empty(t, publisher.changes)

	link.next = State{Value: "urn:x", HasValue: true, IsEnabled: true}
	commands.RefreshAll()
	require.Len(t, publisher.changes, 1)
	assert.Equal(t, "urn", publisher.changes[0].Command)
	assert.Equal(t, State{}, publisher.changes[0].Previous)
	assert.Equal(t, link.next, publisher.changes[0].Current)

	commands.RefreshAll()
	assert.Len(t, publisher.changes, 1)
}

func TestExecute(t *testing.T) {
	commands := NewCollection(nil, zap.NewNop().Sugar())
	link := &fakeCommand{name: "urn"}
	commands.Add(link)

	t.Run("unknown command", func(t *testing.T) {
		var unknown *exception.UnknownCommandError
		err := commands.Execute("bold")
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "bold", unknown.Command)
	})

	t.Run("disabled command", func(t *testing.T) {
		var disabled *exception.CommandDisabledError
		require.True(t, errors.As(commands.Execute("urn", "urn:x"), &disabled))
		assert.Empty(t, link.executed)
	})

	t.Run("refreshes before executing", func(t *testing.T) {
		link.next = State{IsEnabled: true}
		require.NoError(t, commands.Execute("urn", "urn:x"))
		assert.Equal(t, [][]string{{"urn:x"}}, link.executed)
	})
}
