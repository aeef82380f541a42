package events

import (
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/view"
)

// BeforeRebuildContext is handed to hooks that must act before any view
// update for Changes is made.
type BeforeRebuildContext struct {
	Changes *model.ChangeSet
	Writer  *view.Writer
}

// AfterRebuildContext is handed to post-fixers once the view is rebuilt.
type AfterRebuildContext struct {
	Changes *model.ChangeSet
	Model   *model.Model
	Mapper  *view.Mapper
	Writer  *view.Writer
}
