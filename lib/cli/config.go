package cli

import (
	"fmt"

	"github.com/lexml/urnlink-go/lib/settings"
	"github.com/spf13/cobra"
)

func addConfig(topLevel *cobra.Command, root *rootOptions) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print every setting with its current and default value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), settings.RegistryTable(root.settings))
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "Print the environment variable of every setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), settings.EnvTable())
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <json-key>",
		Short: "Print the current value of one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := settings.Lookup(root.settings, args[0])
			if !ok {
				return fmt.Errorf("unknown config key: %s", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Print a settings.json holding every default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := settings.DefaultsJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	})

	topLevel.AddCommand(cmd)
}
