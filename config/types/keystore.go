package types

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeystoreFileConfig has all the information needed to load a private key from a key store file
type KeystoreFileConfig struct {
	// Path is the file path for the key store file
	Path string `mapstructure:"Path"`
	// Password is the password to decrypt the key store file
	Password string `mapstructure:"Password"`
}

// SignerConfig selects the key signing claims. PrivateKey wins over Keystore when both are set.
type SignerConfig struct {
	// PrivateKey is a hex encoded private key, with or without 0x prefix
	PrivateKey string `mapstructure:"PrivateKey"`
	// Keystore is used when PrivateKey is empty
	Keystore KeystoreFileConfig `mapstructure:"Keystore"`
}

// IsSet reports whether any key source is configured
func (s SignerConfig) IsSet() bool {
	return s.PrivateKey != "" || s.Keystore.Path != ""
}

// Key loads the configured private key
func (s SignerConfig) Key() (*ecdsa.PrivateKey, error) {
	if s.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(s.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}

		return key, nil
	}
	if s.Keystore.Path == "" {
		return nil, fmt.Errorf("no private key nor keystore configured")
	}
	keystoreEncrypted, err := os.ReadFile(s.Keystore.Path)
	if err != nil {
		return nil, fmt.Errorf("error reading keystore %s: %w", s.Keystore.Path, err)
	}
	key, err := keystore.DecryptKey(keystoreEncrypted, s.Keystore.Password)
	if err != nil {
		return nil, fmt.Errorf("error decrypting keystore %s: %w", s.Keystore.Path, err)
	}

	return key.PrivateKey, nil
}
