package cli

import (
	"context"

	"github.com/ralt/ubiconfig/internal/filter"
	"github.com/ralt/ubiconfig/internal/loader"
	"github.com/ralt/ubiconfig/internal/models"
	"github.com/ralt/ubiconfig/internal/scanner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewFilterCmd creates the filter command
func NewFilterCmd() *cobra.Command {
	var config models.FilterConfig

	cmd := &cobra.Command{
		Use:   "filter CONFIG",
		Short: "Classify a directory of RPMs against a config",
		Long: `Scans the input directory for RPMs and reports which of them the
config includes or excludes, and the content set each one is published to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.ConfigPath = args[0]
			config.Version, _ = cmd.Flags().GetString("config-version")

			return runFilter(cmd.Context(), &config)
		},
	}

	cmd.Flags().StringVarP(&config.InputDir, "input-dir", "i", "", "Directory of RPMs to classify")
	_ = cmd.MarkFlagRequired("input-dir")
	cmd.Flags().BoolVar(&config.ShowAll, "all", false, "Also list packages the config does not mention")

	return cmd
}

func runFilter(ctx context.Context, config *models.FilterConfig) error {
	cfg, err := loader.NewLoader(config.Version).LoadFile(ctx, config.ConfigPath)
	if err != nil {
		return err
	}

	result, err := filter.Run(ctx, cfg, scanner.NewFileSystemScanner(), config.InputDir)
	if err != nil {
		return err
	}

	for _, e := range result.Included {
		logrus.Infof("include %s: %s -> %s", e.Package.NEVRA(), e.ContentSet.Input, e.ContentSet.Output)
	}
	for _, e := range result.Excluded {
		logrus.Infof("exclude %s", e.Package.NEVRA())
	}
	if config.ShowAll {
		for _, e := range result.NotListed {
			logrus.Infof("skip %s", e.Package.NEVRA())
		}
	}

	return nil
}
