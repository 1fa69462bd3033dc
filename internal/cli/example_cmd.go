package cli

import (
	"github.com/benedict2310/scrollyctl/pkg/loader"
	"github.com/benedict2310/scrollyctl/pkg/model"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	var apiVersion string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a documented example story manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFromCommand(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("api-version") {
				apiVersion = rt.Config.ManifestVersion
			}
			version, err := model.ParseVersion(apiVersion)
			if err != nil {
				return err
			}

			content, err := loader.ExampleManifest(version)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}

	cmd.Flags().StringVar(&apiVersion, "api-version", "", "Manifest apiVersion: v1 or v2")

	return cmd
}
