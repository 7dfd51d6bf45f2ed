package cli

import (
	"fmt"

	"github.com/ralt/ubiconfig/internal/loader"
	"github.com/ralt/ubiconfig/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH...",
		Short: "Validate config files or directories",
		Long: `Loads every config file given, or found below the given directories,
and reports the ones that fail to parse or break naming rules.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("config-version")
			l := loader.NewLoader(version)

			failed := 0
			for _, path := range args {
				configs, err := l.Load(cmd.Context(), path)
				for _, cfg := range configs {
					logrus.Infof("OK %s", cfg)
					logrus.Debugf("%s content sets: %v", cfg.FileName, cfg.ContentSets.ExportMap())
				}
				if err != nil {
					logrus.Errorf("%s: %v", path, err)
					failed++
				}
			}

			if failed > 0 {
				return &models.ConfigError{
					Type: models.ErrInvalidConfig,
					Err:  fmt.Errorf("%d of %d paths failed validation", failed, len(args)),
				}
			}

			logrus.Info("All configs are valid")
			return nil
		},
	}
}
