package cli

import (
	"github.com/lexml/urnlink-go/lib/settings"
	"github.com/lexml/urnlink-go/lib/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configJSON string
	settings   *settings.Settings
	logger     *zap.SugaredLogger
}

// New returns the urnlink command tree.
func New() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "urnlink",
		Short:         "Render and inspect documents carrying URN links.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.ReadConfig(opts.configJSON)
			if err != nil {
				return err
			}
			opts.settings = cfg
			opts.logger = utils.SetupLogger(cfg.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configJSON, "config-json", "", "inline settings JSON used instead of settings.json")

	addRender(cmd, opts)
	addConfig(cmd, opts)
	return cmd
}
