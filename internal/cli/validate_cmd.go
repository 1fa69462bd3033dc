package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benedict2310/scrollyctl/internal/output"
	"github.com/benedict2310/scrollyctl/pkg/loader"
	"github.com/benedict2310/scrollyctl/pkg/validator"
	"github.com/spf13/cobra"
)

// exitInvalidConfig is returned when a manifest loads but breaks a configuration rule.
const exitInvalidConfig = 2

func newValidateCmd() *cobra.Command {
	var from string
	var format string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a story manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(from) == "" {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return fmt.Errorf("required flag(s) \"from\" not set")
			}
			rt, err := runtimeFromCommand(cmd)
			if err != nil {
				return err
			}
			outFormat, err := output.ResolveFormat(format, cmd.Flags().Changed("output"), rt.Config.Output)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(from)
			if err != nil {
				return fmt.Errorf("read manifest %s: %w", from, err)
			}

			opts := loader.Options{Logger: rt.Logger}
			cfg, err := loader.Decode(content, opts)
			if err == nil {
				err = validator.ValidateRootConfig(*cfg)
			}
			if err != nil && !errors.Is(err, validator.ErrInvalidConfig) {
				return fmt.Errorf("load manifest %s: %w", from, err)
			}

			report := newReport(from, cfg, err)
			if writeErr := output.Write(cmd.OutOrStdout(), outFormat, report); writeErr != nil {
				return writeErr
			}
			if err != nil {
				rt.Logger.Info("manifest rejected", "manifest", from, "error", err)
				return exitCodeError(exitInvalidConfig, fmt.Errorf("manifest %s is invalid: %w", from, err))
			}

			rt.Logger.Info("manifest valid", "manifest", from, "sections", len(cfg.Sections))
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "Story manifest to validate")
	cmd.Flags().StringVarP(&format, "output", "o", string(output.FormatTable), "Report format: table, json or yaml")

	return cmd
}
