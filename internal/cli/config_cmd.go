package cli

import (
	"fmt"

	"github.com/benedict2310/scrollyctl/internal/config"
	"github.com/benedict2310/scrollyctl/internal/output"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage scrollyctl settings",
	}

	cmd.AddCommand(newConfigViewCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the loaded config",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFromCommand(cmd)
			if err != nil {
				return err
			}
			return output.WriteStructured(cmd.OutOrStdout(), output.FormatYAML, &rt.Config)
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set logLevel, output or manifestVersion and save the config",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFromCommand(cmd)
			if err != nil {
				return err
			}

			cfg := rt.Config
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(rt.ConfigPath, cfg); err != nil {
				return err
			}

			rt.Logger.Debug("config saved", "path", rt.ConfigPath, "key", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %q in %s\n", args[0], args[1], rt.ConfigPath)
			return nil
		},
	}
}
