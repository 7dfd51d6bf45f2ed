package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ubiconfig",
		Short: "Load, validate and export UBI population configs",
		Long: `Ubiconfig reads UBI population configs, which describe the packages,
modules and content sets published to a Universal Base Image repository.

Configs may be YAML, JSON or TOML documents, optionally gzip-compressed.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config-version", "", "Version recorded on loaded configs")

	// Add subcommands
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewFilterCmd())

	return rootCmd
}
