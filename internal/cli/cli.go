// filepath: internal/cli/cli.go
package cli

import (
	"fmt"
	"os"
	"time"

	"people/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time
)

type GlobalOptions struct {
	CfgFilePath string

	Logger *logrus.Logger
	Conf   *config.Config
}

// NewRootCMD builds the command tree. Without a subcommand the server is started.
func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}

	rootCMD := &cobra.Command{
		Use:           "people",
		Short:         "People API",
		Long:          "A REST service storing people records in SQLite, Redis or memory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// PersistentPreRunE loads the configuration before any command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd, globalOptions)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), globalOptions)
		},
	}

	// register global flags
	registerFlags(rootCMD, globalOptions)

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewSeedCommand(globalOptions))
	rootCMD.AddCommand(NewConfigCommand(globalOptions))
	rootCMD.AddCommand(NewVersionCommand())

	return rootCMD
}

// Execute is called by main.main().
func Execute() {
	StartTime = time.Now()

	rootCmd := NewRootCMD()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
