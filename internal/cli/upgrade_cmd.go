package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benedict2310/scrollyctl/pkg/loader"
	"github.com/benedict2310/scrollyctl/pkg/validator"
	"github.com/spf13/cobra"
)

func newUpgradeCmd() *cobra.Command {
	var from string
	var outPath string

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Rewrite a v1 story manifest as v2",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(from) == "" {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return fmt.Errorf("required flag(s) \"from\" not set")
			}
			rt, err := runtimeFromCommand(cmd)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(from)
			if err != nil {
				return fmt.Errorf("read manifest %s: %w", from, err)
			}

			upgraded, err := loader.Upgrade(content, loader.Options{Logger: rt.Logger})
			if err != nil {
				err = fmt.Errorf("upgrade manifest %s: %w", from, err)
				if errors.Is(err, validator.ErrInvalidConfig) {
					return exitCodeError(exitInvalidConfig, err)
				}
				return err
			}

			if strings.TrimSpace(outPath) == "" {
				_, err = cmd.OutOrStdout().Write(upgraded)
				return err
			}
			if err := os.WriteFile(outPath, upgraded, 0o644); err != nil {
				return fmt.Errorf("write manifest %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Upgraded %s to %s\n", from, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "v1 story manifest to upgrade")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the upgraded manifest to this path instead of stdout")

	return cmd
}
