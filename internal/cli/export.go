package cli

import (
	"context"
	"fmt"

	"github.com/ralt/ubiconfig/internal/exporter"
	"github.com/ralt/ubiconfig/internal/loader"
	"github.com/ralt/ubiconfig/internal/models"
	"github.com/ralt/ubiconfig/internal/signer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var config models.ExportConfig

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Re-export a config in normalized form",
		Long: `Loads a config file and writes it back out, optionally converting
between YAML, JSON and TOML, compressing and signing the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InputPath = args[0]
			config.Version, _ = cmd.Flags().GetString("config-version")

			if err := validateExportConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)
			return runExport(cmd.Context(), &config)
		},
	}

	cmd.Flags().StringVarP(&config.OutputPath, "output", "o", "", "Output file")
	cmd.Flags().StringVarP(&config.Format, "format", "f", "", "Output format: yaml, json or toml (default: from output extension)")
	cmd.Flags().BoolVar(&config.Gzip, "gzip", false, "Gzip-compress the output")

	// GPG signing flags
	cmd.Flags().StringVarP(&config.GPGKeyPath, "gpg-key", "k", "", "Path to GPG private key")
	cmd.Flags().StringVarP(&config.GPGPassphrase, "gpg-passphrase", "p", "", "GPG key passphrase")

	return cmd
}

func validateExportConfig(config *models.ExportConfig) error {
	if config.OutputPath == "" {
		return &models.ConfigError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("output is required"),
		}
	}

	if config.Format == "" {
		config.Format = loader.DetectFormat(config.OutputPath).String()
	}

	if loader.ParseFormat(config.Format) == loader.FormatUnknown {
		return &models.ConfigError{
			Type:    models.ErrInvalidConfig,
			Subject: config.Format,
			Err:     fmt.Errorf("unsupported output format"),
		}
	}

	return nil
}

func runExport(ctx context.Context, config *models.ExportConfig) error {
	cfg, err := loader.NewLoader(config.Version).LoadFile(ctx, config.InputPath)
	if err != nil {
		return err
	}

	data, err := exporter.Marshal(cfg, loader.ParseFormat(config.Format))
	if err != nil {
		return err
	}

	if err := exporter.Write(config.OutputPath, data, config.Gzip); err != nil {
		return err
	}
	logrus.Infof("Exported %s to %s", cfg.FileName, config.OutputPath)

	if config.GPGKeyPath == "" {
		return nil
	}

	gpgSigner, err := signer.NewGPGSigner(config.GPGKeyPath, config.GPGPassphrase)
	if err != nil {
		return &models.ConfigError{
			Type: models.ErrSigning,
			Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
		}
	}

	sigPath, err := signer.SignFile(gpgSigner, config.OutputPath)
	if err != nil {
		return &models.ConfigError{
			Type:    models.ErrSigning,
			Subject: config.OutputPath,
			Err:     err,
		}
	}

	logrus.Infof("Signature written to %s (key %s)", sigPath, gpgSigner.Fingerprint())
	return nil
}
