package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/benedict2310/scrollyctl/internal/config"
	"github.com/spf13/cobra"
)

// commandRuntime is resolved once per invocation and shared by subcommands.
type commandRuntime struct {
	Config     config.Config
	ConfigPath string
	Logger     *slog.Logger
}

type runtimeKey struct{}

// NewRootCmd builds the scrollyctl root command tree.
func NewRootCmd(version string) *cobra.Command {
	var configPath string
	var logLevel string

	cmd := &cobra.Command{
		Use:          "scrollyctl",
		Short:        "Validate and maintain scrollytelling story manifests",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger, err := NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger.Debug("config loaded", "path", path)

			rt := &commandRuntime{Config: cfg, ConfigPath: path, Logger: logger}
			cmd.SetContext(context.WithValue(cmd.Context(), runtimeKey{}, rt))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the scrollyctl config file (default ~/.scrollyctl/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newExampleCmd())
	cmd.AddCommand(newUpgradeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

func runtimeFromCommand(cmd *cobra.Command) (*commandRuntime, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("internal: command runtime is not initialized")
	}
	rt, ok := ctx.Value(runtimeKey{}).(*commandRuntime)
	if !ok || rt == nil {
		return nil, fmt.Errorf("internal: command runtime is not initialized")
	}
	return rt, nil
}
