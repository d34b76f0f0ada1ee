// Package identity provides the key pair used to stand behind the sender
// of a transaction.
package identity

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyPair is the hex encoded form of a secp256k1 key pair.
type KeyPair struct {
	Secret  string
	Public  string
	address string
}

// Generate constructs a new random key pair.
func Generate() (KeyPair, *ecdsa.PrivateKey, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return KeyPair{}, nil, fmt.Errorf("generating key: %w", err)
	}

	return FromPrivateKey(privateKey), privateKey, nil
}

// Load reads a private key file and returns its key pair.
func Load(path string) (KeyPair, *ecdsa.PrivateKey, error) {
	privateKey, err := crypto.LoadECDSA(path)
	if err != nil {
		return KeyPair{}, nil, fmt.Errorf("loading key %q: %w", path, err)
	}

	return FromPrivateKey(privateKey), privateKey, nil
}

// Save writes the private key to the specified file.
func Save(path string, privateKey *ecdsa.PrivateKey) error {
	if err := crypto.SaveECDSA(path, privateKey); err != nil {
		return fmt.Errorf("saving key %q: %w", path, err)
	}

	return nil
}

// FromPrivateKey encodes the private key and its public key.
func FromPrivateKey(privateKey *ecdsa.PrivateKey) KeyPair {
	return KeyPair{
		Secret:  hexutil.Encode(crypto.FromECDSA(privateKey)),
		Public:  hexutil.Encode(crypto.FromECDSAPub(&privateKey.PublicKey)),
		address: crypto.PubkeyToAddress(privateKey.PublicKey).Hex(),
	}
}

// Account returns the checksummed address derived from the public key.
func (kp KeyPair) Account() string {
	return kp.address
}
