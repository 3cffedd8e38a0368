package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/envcheck/envcheck/pkg/version"
)

// newVersionCmd creates the version command. The root --version flag prints
// the short form; this subcommand adds build metadata and a JSON shape for
// scripts.
func newVersionCmd() *cobra.Command {
	var (
		jsonOutput  bool
		shortOutput bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetInfo()

			switch {
			case shortOutput:
				cmd.Println(info.Version)
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			default:
				cmd.Printf("envcheck %s\n", info.Version)
				cmd.Printf("  commit:   %s\n", info.Commit)
				cmd.Printf("  built:    %s\n", info.Date)
				cmd.Printf("  go:       %s\n", info.GoVersion)
				cmd.Printf("  platform: %s/%s\n", info.OS, info.Arch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")
	cmd.Flags().BoolVar(&shortOutput, "short", false, "Output only the version number")

	return cmd
}
