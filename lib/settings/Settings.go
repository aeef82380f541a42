package settings

import (
	"maps"
	"slices"

	"github.com/spf13/viper"
)

type UrnLink struct {
	AttributeKey   string `json:"attributeKey" validate:"required"`
	ElementName    string `json:"elementName" validate:"required"`
	ElementClass   string `json:"elementClass"`
	HighlightClass string `json:"highlightClass" validate:"required"`
	TrustedScheme  string `json:"trustedScheme" validate:"required"`
	Placeholder    string `json:"placeholder" validate:"required"`
}

type PluginSettings struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type Settings struct {
	LogLevel string                    `json:"loglevel" validate:"required,oneof=DEBUG INFO WARN ERROR"`
	UrnLink  UrnLink                   `json:"urnLink" validate:"required"`
	Plugins  map[string]PluginSettings `json:"plugins"`

	source *viper.Viper
}

// GetAllPlugins returns the plugin settings sorted by name.
func (s *Settings) GetAllPlugins() []PluginSettings {
	out := make([]PluginSettings, 0, len(s.Plugins))
	for _, name := range slices.Sorted(maps.Keys(s.Plugins)) {
		out = append(out, s.Plugins[name])
	}
	return out
}

func (s *Settings) IsPluginEnabled(name string) bool {
	plugin, ok := s.Plugins[name]
	return ok && plugin.Enabled
}

// Get returns the effective value of a registry key.
func (s *Settings) Get(key string) any {
	if s.source == nil {
		return nil
	}
	return s.source.Get(key)
}
