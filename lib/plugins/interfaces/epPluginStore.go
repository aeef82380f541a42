package interfaces

import (
	"github.com/lexml/urnlink-go/lib/command"
	"github.com/lexml/urnlink-go/lib/conversion"
	"github.com/lexml/urnlink-go/lib/hooks"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/settings"
	"go.uber.org/zap"
)

type EpPluginStore struct {
	Logger            *zap.SugaredLogger
	HookSystem        *hooks.Hook
	Model             *model.Model
	Editing           *conversion.EditingController
	Data              *conversion.DataController
	Commands          *command.Collection
	RetrievedSettings *settings.Settings
}
