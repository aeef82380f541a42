package hooks

import (
	"slices"

	"github.com/google/uuid"
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/hooks/events"
	"github.com/lexml/urnlink-go/lib/model"
)

const (
	// BeforeRebuild runs before a change is translated into view updates.
	BeforeRebuild = "beforeRebuild"
	// AfterRebuild runs once the view reflects the current model state.
	AfterRebuild        = "afterRebuild"
	CommandStateChanged = command.StateChangedHook
)

type registration struct {
	id string
	cb func(ctx any)
}

// Hook is an ordered callback registry: hooks of one key run in the order
// they were enqueued, after any prepended ones.
type Hook struct {
	hooks map[string][]registration
}

func NewHook() *Hook {
	return &Hook{
		hooks: make(map[string][]registration),
	}
}

func (h *Hook) EnqueueHook(key string, cb func(ctx any)) string {
	id := uuid.NewString()
	h.hooks[key] = append(h.hooks[key], registration{id: id, cb: cb})
	return id
}

// PrependHook registers cb ahead of every hook currently registered for key.
func (h *Hook) PrependHook(key string, cb func(ctx any)) string {
	id := uuid.NewString()
	h.hooks[key] = slices.Insert(h.hooks[key], 0, registration{id: id, cb: cb})
	return id
}

func (h *Hook) DequeueHook(key, id string) {
	h.hooks[key] = slices.DeleteFunc(h.hooks[key], func(r registration) bool {
		return r.id == id
	})
}

func (h *Hook) ExecuteHooks(key string, ctx any) {
	registered, ok := h.hooks[key]
	if !ok {
		return
	}

	for _, r := range slices.Clone(registered) {
		r.cb(ctx)
	}
}

func (h *Hook) Count(key string) int {
	return len(h.hooks[key])
}

func (h *Hook) EnqueueModelChangedHook(cb func(changes *model.ChangeSet)) string {
	return h.EnqueueHook(model.ChangedHook, func(ctx any) {
		if changes, ok := ctx.(*model.ChangeSet); ok {
			cb(changes)
		}
	})
}

func (h *Hook) EnqueueBeforeRebuildHook(cb func(ctx *events.BeforeRebuildContext)) string {
	return h.EnqueueHook(BeforeRebuild, beforeRebuild(cb))
}

// PrependBeforeRebuildHook registers cb to run before every other view
// reaction to a change, including hooks registered earlier.
func (h *Hook) PrependBeforeRebuildHook(cb func(ctx *events.BeforeRebuildContext)) string {
	return h.PrependHook(BeforeRebuild, beforeRebuild(cb))
}

func beforeRebuild(cb func(ctx *events.BeforeRebuildContext)) func(ctx any) {
	return func(ctx any) {
		if rebuildCtx, ok := ctx.(*events.BeforeRebuildContext); ok {
			cb(rebuildCtx)
		}
	}
}

func (h *Hook) ExecuteBeforeRebuildHooks(ctx *events.BeforeRebuildContext) {
	h.ExecuteHooks(BeforeRebuild, ctx)
}

func (h *Hook) EnqueueAfterRebuildHook(cb func(ctx *events.AfterRebuildContext)) string {
	return h.EnqueueHook(AfterRebuild, func(ctx any) {
		if rebuildCtx, ok := ctx.(*events.AfterRebuildContext); ok {
			cb(rebuildCtx)
		}
	})
}

func (h *Hook) ExecuteAfterRebuildHooks(ctx *events.AfterRebuildContext) {
	h.ExecuteHooks(AfterRebuild, ctx)
}

func (h *Hook) EnqueueCommandStateChangedHook(cb func(change *command.StateChange)) string {
	return h.EnqueueHook(CommandStateChanged, func(ctx any) {
		if change, ok := ctx.(*command.StateChange); ok {
			cb(change)
		}
	})
}
