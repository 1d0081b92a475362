package operator

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"os"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Keypair is the server's operator identity. It pays fees on, and signs,
// every transaction the server submits on its own behalf.
type Keypair struct {
	priv ed25519.PrivateKey
}

// LoadKeypair reads a Solana CLI style keypair file: a JSON array of the 64
// private key bytes. The key material is never logged or re-serialized.
func LoadKeypair(path string) (*Keypair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keypair file")
	}

	var keyBytes []byte
	if err := json.Unmarshal(raw, &keyBytes); err != nil {
		return nil, errors.Wrap(err, "keypair file is not a json byte array")
	}

	if len(keyBytes) != ed25519.PrivateKeySize {
		return nil, errors.Errorf("keypair file must contain %d bytes, got %d", ed25519.PrivateKeySize, len(keyBytes))
	}

	priv := ed25519.PrivateKey(keyBytes)

	// The file embeds the public key in the trailing 32 bytes. Reject files
	// where it doesn't match the seed, which catches corrupted exports.
	derived := priv.Public().(ed25519.PublicKey)
	if !bytes.Equal(derived, keyBytes[ed25519.SeedSize:]) {
		return nil, errors.New("keypair file public key does not match private key")
	}

	return &Keypair{priv: priv}, nil
}

func NewKeypair(priv ed25519.PrivateKey) *Keypair {
	return &Keypair{priv: priv}
}

func (k *Keypair) Public() ed25519.PublicKey {
	return k.priv.Public().(ed25519.PublicKey)
}

func (k *Keypair) PublicKeyString() string {
	return base58.Encode(k.Public())
}

func (k *Keypair) Private() ed25519.PrivateKey {
	return k.priv
}

// String intentionally identifies the operator by public key only.
func (k *Keypair) String() string {
	return k.PublicKeyString()
}
