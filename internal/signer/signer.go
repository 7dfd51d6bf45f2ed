package signer

import (
	"fmt"
	"os"

	"github.com/ralt/ubiconfig/internal/utils"
)

// Signer interface for signing exported configs
type Signer interface {
	// SignDetached creates an armored detached signature (config.yaml.asc)
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the public key
	GetPublicKey() ([]byte, error)
}

// SignatureSuffix is appended to a file name to form its signature path
const SignatureSuffix = ".asc"

// SignFile writes a detached signature of the file at path next to it and
// returns the signature path.
func SignFile(s Signer, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	signature, err := s.SignDetached(data)
	if err != nil {
		return "", err
	}

	sigPath := path + SignatureSuffix
	if err := utils.WriteFile(sigPath, signature, 0644); err != nil {
		return "", fmt.Errorf("failed to write signature: %w", err)
	}
	return sigPath, nil
}
