package oracle

import (
	"crypto/ed25519"
	"errors"

	"github.com/mr-tron/base58"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var (
	ErrInvalidAccountData = errors.New("unexpected account data")
	ErrFeedNotFound       = errors.New("device feed not found")
)

// Canonical devnet deployment of the oracle program.
var (
	PROGRAM_ADDRESS = mustBase58Decode("BkKcenZveLhg2LrHiX45hc937nQGpri2nvfvXfdcUZNN")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

// Program binds a deployed oracle program id and the commitment level used
// for feed reads. Constructed once at startup from configuration.
type Program struct {
	ID         ed25519.PublicKey
	Commitment solana.Commitment
}

func NewProgram(id ed25519.PublicKey, commitment solana.Commitment) *Program {
	return &Program{
		ID:         id,
		Commitment: commitment,
	}
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
