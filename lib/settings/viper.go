package settings

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lexml/urnlink-go/lib/exception"
	"github.com/spf13/viper"
)

var pluginKeys = map[string]string{
	"ep_urnlink":     EpUrnLinkEnabled,
	"ep_basicstyles": EpBasicStylesEnabled,
	"ep_codeblock":   EpCodeBlockEnabled,
	"ep_heading":     EpHeadingEnabled,
}

// ReadConfig builds the settings from jsonStr, or from settings.json in the
// working directory when jsonStr is empty. Environment variables prefixed
// with URNLINK_ override both.
func ReadConfig(jsonStr string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("json")

	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if jsonStr != "" {
		if err := v.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, exception.NewConfigError("cannot parse settings", err)
		}
	} else {
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, exception.NewConfigError("cannot read settings.json", err)
			}
		}
	}
	applyRegistryDefaults(v)

	plugins := make(map[string]PluginSettings, len(pluginKeys))
	for name, key := range pluginKeys {
		plugins[name] = PluginSettings{Name: name, Enabled: v.GetBool(key)}
	}

	s := &Settings{
		LogLevel: strings.ToUpper(v.GetString(Loglevel)),
		UrnLink: UrnLink{
			AttributeKey:   v.GetString(UrnLinkAttributeKey),
			ElementName:    v.GetString(UrnLinkElementName),
			ElementClass:   v.GetString(UrnLinkElementClass),
			HighlightClass: v.GetString(UrnLinkHighlightClass),
			TrustedScheme:  v.GetString(UrnLinkTrustedScheme),
			Placeholder:    v.GetString(UrnLinkPlaceholder),
		},
		Plugins: plugins,
		source:  v,
	}

	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())
	if err := validatorEvaluator.Struct(s); err != nil {
		return nil, exception.NewConfigError("invalid settings", err)
	}
	return s, nil
}
