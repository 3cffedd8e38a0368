package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/envcheck/envcheck/configs"
	"github.com/envcheck/envcheck/internal/config"
)

// newInitCmd creates the init command, which writes a commented
// .envcheck.yaml template to the project root.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented .envcheck.yaml template to the project root",
		Long: `init writes a commented configuration template to .envcheck.yaml in the
project root. Every key in the template mirrors a built-in default, so the
generated file changes nothing until you edit it.

An existing .envcheck.yaml (or .envcheck.yml) is preserved unless --force
is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := config.FindProjectRoot(".")
			if err != nil {
				root, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("determine working directory: %w", err)
				}
			}
			return writeConfigTemplate(cmd, root, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

// writeConfigTemplate writes the embedded template, preserving user
// customizations unless force is set. Both .yaml and .yml spellings count
// as existing.
func writeConfigTemplate(cmd *cobra.Command, root string, force bool) error {
	yamlPath := filepath.Join(root, config.FileName)

	if !force {
		if _, err := os.Stat(yamlPath); err == nil {
			cmd.Printf("Existing %s preserved (use --force to overwrite)\n", config.FileName)
			return nil
		}
		ymlPath := strings.TrimSuffix(yamlPath, ".yaml") + ".yml"
		if _, err := os.Stat(ymlPath); err == nil {
			cmd.Printf("Existing %s preserved (use --force to overwrite)\n", filepath.Base(ymlPath))
			return nil
		}
	}

	if err := os.WriteFile(yamlPath, []byte(configs.ProjectConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", config.FileName, err)
	}

	cmd.Printf("Created %s\n", yamlPath)
	return nil
}
