// Package cli provides the command-line interface for pdftable.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdftable"
	"github.com/tsawler/pdftable/internal/cli/commands"
	"github.com/tsawler/pdftable/internal/logger"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		verbose bool
		logFile string
	)

	rootCmd := &cobra.Command{
		Use:   "pdftable",
		Short: "pdftable - tables to PDF",
		Long: `pdftable renders tables described in YAML definition files into PDF
documents. Tables can list their rows and cells explicitly or embed an
HTML <table> fragment.`,
		Version: pdftable.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			log := logger.New(logger.Options{
				Verbose: verbose,
				Console: cmd.ErrOrStderr(),
				File:    logFile,
			})
			cmd.SetContext(commands.WithLogger(cmd.Context(), log))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = commands.GetLogger(cmd.Context()).Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this rotating file")

	rootCmd.AddCommand(commands.NewVersionCommand(pdftable.Version))
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
