package signer

import (
	"bytes"
	"crypto"
	"errors"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// ErrNoPrivateKey is returned when a key file holds only public keys
var ErrNoPrivateKey = errors.New("no private key found in key file")

// GPGSigner signs exported configs with an OpenPGP secret key
type GPGSigner struct {
	entity *openpgp.Entity
	config *packet.Config
}

// NewGPGSigner loads the first secret key of an armored or binary key file.
// An encrypted key is unlocked with passphrase.
func NewGPGSigner(keyPath, passphrase string) (*GPGSigner, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("key path is empty")
	}

	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	entities, err := readKeyRing(data)
	if err != nil {
		return nil, err
	}

	entity, err := secretEntity(entities)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyPath, err)
	}

	if err := unlock(entity, passphrase); err != nil {
		return nil, err
	}

	return &GPGSigner{
		entity: entity,
		config: &packet.Config{DefaultHash: crypto.SHA512},
	}, nil
}

func readKeyRing(data []byte) (openpgp.EntityList, error) {
	entities, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err == nil {
		return entities, nil
	}

	entities, err = openpgp.ReadKeyRing(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	return entities, nil
}

func secretEntity(entities openpgp.EntityList) (*openpgp.Entity, error) {
	for _, entity := range entities {
		if entity.PrivateKey != nil {
			return entity, nil
		}
	}
	return nil, ErrNoPrivateKey
}

// unlock decrypts the primary key and every subkey that is encrypted
func unlock(entity *openpgp.Entity, passphrase string) error {
	keys := []*packet.PrivateKey{entity.PrivateKey}
	for _, subkey := range entity.Subkeys {
		keys = append(keys, subkey.PrivateKey)
	}

	for _, key := range keys {
		if key == nil || !key.Encrypted {
			continue
		}
		if passphrase == "" {
			return fmt.Errorf("key %X is encrypted and no passphrase was given", key.Fingerprint)
		}
		if err := key.Decrypt([]byte(passphrase)); err != nil {
			return fmt.Errorf("failed to decrypt key %X: %w", key.Fingerprint, err)
		}
	}
	return nil
}

// SignDetached creates an armored detached signature of data
func (s *GPGSigner) SignDetached(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&buf, s.entity, bytes.NewReader(data), s.config); err != nil {
		return nil, fmt.Errorf("failed to create detached signature: %w", err)
	}
	return buf.Bytes(), nil
}

// GetPublicKey returns the public key in armored format
func (s *GPGSigner) GetPublicKey() ([]byte, error) {
	var buf bytes.Buffer

	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		return nil, err
	}

	if err := s.entity.Serialize(w); err != nil {
		w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Fingerprint returns the hex fingerprint of the signing key
func (s *GPGSigner) Fingerprint() string {
	return fmt.Sprintf("%X", s.entity.PrimaryKey.Fingerprint)
}
