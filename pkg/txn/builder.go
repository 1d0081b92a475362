// Package txn assembles unsigned transactions for clients to sign and
// submit themselves. The server never holds user keys, so every campaign
// and provider mutation leaves the API as serialized transaction bytes
// with an empty signature slot for the fee payer.
package txn

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/pkg/errors"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

type Builder struct {
	client solana.Client
}

func NewBuilder(client solana.Client) *Builder {
	return &Builder{client: client}
}

// Build assembles a v0 transaction over the provided instructions with a
// fresh blockhash. The returned transaction is unsigned.
func (b *Builder) Build(feePayer ed25519.PublicKey, instructions ...solana.Instruction) (solana.Transaction, error) {
	if len(feePayer) != ed25519.PublicKeySize {
		return solana.Transaction{}, errors.New("invalid fee payer")
	}
	if len(instructions) == 0 {
		return solana.Transaction{}, errors.New("no instructions")
	}

	txn := solana.NewVersionedTransaction(feePayer, instructions...)

	bh, err := b.client.GetLatestBlockhash()
	if err != nil {
		return solana.Transaction{}, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(bh)

	return txn, nil
}

// BuildBase64 is Build with the wire serialization clients expect.
func (b *Builder) BuildBase64(feePayer ed25519.PublicKey, instructions ...solana.Instruction) (string, error) {
	txn, err := b.Build(feePayer, instructions...)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(txn.Marshal()), nil
}
