package soulboard

import (
	"crypto/ed25519"
	"errors"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrAccountNotFound        = errors.New("account not found")
)

// Canonical devnet deployment of the program. Deployments against other
// clusters configure their own id at startup.
var (
	PROGRAM_ADDRESS = mustBase58Decode("6GetNC8W9RUzWeTbk5VmKhfwpakhzAqjEPffGJMtq8y7")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

// Program binds a deployed program id and the commitment level used for
// account reads. It is constructed once at startup from configuration and
// passed into every component that derives addresses, builds instructions,
// or fetches accounts.
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

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
)
