package plugins

import (
	"slices"

	"github.com/lexml/urnlink-go/lib/plugins/ep_basicstyles"
	"github.com/lexml/urnlink-go/lib/plugins/ep_codeblock"
	"github.com/lexml/urnlink-go/lib/plugins/ep_heading"
	"github.com/lexml/urnlink-go/lib/plugins/ep_urnlink"
	"github.com/lexml/urnlink-go/lib/plugins/interfaces"
)

// RegisteredPlugins returns fresh instances of every known plugin.
func RegisteredPlugins() []interfaces.EpPlugin {
	return []interfaces.EpPlugin{
		&ep_basicstyles.EpBasicStylesPlugin{},
		&ep_codeblock.EpCodeBlockPlugin{},
		&ep_heading.EpHeadingsPlugin{},
		&ep_urnlink.EpUrnLinkPlugin{},
	}
}

// InitPlugins initializes the plugins enabled in the settings, in the order
// given, and returns them.
func InitPlugins(store *interfaces.EpPluginStore, available []interfaces.EpPlugin) []interfaces.EpPlugin {
	var ts = store.RetrievedSettings.GetAllPlugins()
	enabledPlugins := make([]string, 0)
	for _, pluginSettings := range ts {
		if pluginSettings.Enabled {
			enabledPlugins = append(enabledPlugins, pluginSettings.Name)
		}
	}
	loaded := make([]interfaces.EpPlugin, 0, len(enabledPlugins))
	for _, plugin := range available {
		if slices.Contains(enabledPlugins, plugin.Name()) {
			store.Logger.Infof("Loading plugin: %s", plugin.Name())
			plugin.Init(store)
			plugin.SetEnabled(true)
			loaded = append(loaded, plugin)
		}
	}
	return loaded
}
