package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treescope/treescope/internal/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the treescope configuration file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to disk",
		Long: `Write the current configuration to the config file.

With no existing file this writes the defaults, giving a starting point to
edit. An existing file is left alone unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := config.Path()
			if _, err := os.Stat(p); err == nil && !force {
				printInfo("Config already exists (use --force to overwrite)")
				printFile(p)
				return nil
			}

			if err := config.Save(c.Config); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			printSuccess("Config written")
			printFile(p)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(config.Path())
			return nil
		},
	}
}
