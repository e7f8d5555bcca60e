package utils

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

// LoadPrivateKey returns the signing key from a hex string, or from an
// encrypted keystore file when hexKey is empty.
func LoadPrivateKey(hexKey, keystorePath, password string) (*ecdsa.PrivateKey, error) {
	if hexKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
		if err != nil {
			return nil, fmt.Errorf("error parsing private key: %w", err)
		}
		return key, nil
	}
	if keystorePath == "" {
		return nil, fmt.Errorf("neither a private key nor a keystore path is configured")
	}
	data, err := os.ReadFile(keystorePath)
	if err != nil {
		return nil, fmt.Errorf("error reading keystore %v: %w", keystorePath, err)
	}
	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		return nil, fmt.Errorf("error decrypting keystore %v: %w", keystorePath, err)
	}
	return key.PrivateKey, nil
}
