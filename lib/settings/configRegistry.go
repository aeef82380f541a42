package settings

import (
	"strings"

	"github.com/spf13/viper"
)

type ConfigKey struct {
	Key         string
	Default     any
	Description string
}

const envPrefix = "URNLINK"

const (
	Loglevel = "loglevel"

	UrnLinkAttributeKey   = "urnLink.attributeKey"
	UrnLinkElementName    = "urnLink.elementName"
	UrnLinkElementClass   = "urnLink.elementClass"
	UrnLinkHighlightClass = "urnLink.highlightClass"
	UrnLinkTrustedScheme  = "urnLink.trustedScheme"
	UrnLinkPlaceholder    = "urnLink.placeholder"

	EpUrnLinkEnabled     = "plugins.ep_urnlink.enabled"
	EpBasicStylesEnabled = "plugins.ep_basicstyles.enabled"
	EpCodeBlockEnabled   = "plugins.ep_codeblock.enabled"
	EpHeadingEnabled     = "plugins.ep_heading.enabled"
)

func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(
		strings.ReplaceAll(key, ".", "_"),
	)
}

var Registry = []ConfigKey{
	{Key: Loglevel, Default: "INFO", Description: "Log level (DEBUG, INFO, WARN, ERROR)"},

	// ---------------------------------------------------------------------
	// URN links
	// ---------------------------------------------------------------------
	{Key: UrnLinkAttributeKey, Default: "xlink:href", Description: "Model attribute holding the URN"},
	{Key: UrnLinkElementName, Default: "span", Description: "View element rendering a link"},
	{Key: UrnLinkElementClass, Default: "lexml-url", Description: "Class set on every link element"},
	{
		Key:         UrnLinkHighlightClass,
		Default:     "ck-link_selected",
		Description: "Class marking the link that contains the selection",
	},
	{Key: UrnLinkTrustedScheme, Default: "urn:lex:br", Description: "Scheme prefix always accepted as safe"},
	{Key: UrnLinkPlaceholder, Default: "#", Description: "Rendered in place of unsafe values"},

	// ---------------------------------------------------------------------
	// Plugins
	// ---------------------------------------------------------------------
	{Key: EpUrnLinkEnabled, Default: true, Description: "Enable ep_urnlink plugin"},
	{Key: EpBasicStylesEnabled, Default: true, Description: "Enable ep_basicstyles plugin"},
	{Key: EpCodeBlockEnabled, Default: true, Description: "Enable ep_codeblock plugin"},
	{Key: EpHeadingEnabled, Default: false, Description: "Enable ep_heading plugin"},
}

func applyRegistryDefaults(v *viper.Viper) {
	for _, c := range Registry {
		v.SetDefault(c.Key, c.Default)
	}
}
