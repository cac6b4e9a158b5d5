// filepath: internal/cli/config_command.go
package cli

import (
	"fmt"

	"people/internal/config"

	"github.com/spf13/cobra"
)

// NewConfigCommand writes the effective configuration (file, env and flags merged) as TOML.
func NewConfigCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "write-config [path]",
		Short: "Write the effective configuration to a TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := globalOptions.CfgFilePath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SaveConfig(path, globalOptions.Conf); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
}
