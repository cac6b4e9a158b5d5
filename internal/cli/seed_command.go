// filepath: internal/cli/seed_command.go
package cli

import (
	"fmt"

	"people/internal/audit"
	"people/internal/initconfig"
	"people/internal/services"

	"github.com/spf13/cobra"
)

func NewSeedCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Load people from a TOML seed file into the configured storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := globalOptions.Conf

			repo, err := openRepository(cmd.Context(), cfg, globalOptions.Logger)
			if err != nil {
				return err
			}
			defer repo.Close()

			personService := services.NewPersonService(repo, audit.NewLoggerAuditor(cfg.Logging.AuditEnabled))
			report, err := initconfig.Run(cmd.Context(), personService, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d created, %d skipped, %d failed\n", report.Created, report.Skipped, report.Failed)
			return nil
		},
	}
}
