package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var UpdateProviderInstructionDiscriminator = instructionDiscriminator("update_provider")

// UpdateProviderInstructionArgs carries partial updates. A nil field leaves
// the on chain value untouched.
type UpdateProviderInstructionArgs struct {
	Name         *string
	Location     *string
	ContactEmail *string
	IsActive     *bool
}

type UpdateProviderInstructionAccounts struct {
	Authority        ed25519.PublicKey
	AdProvider       ed25519.PublicKey
	ProviderMetadata ed25519.PublicKey
}

func (p *Program) NewUpdateProviderInstruction(
	accounts *UpdateProviderInstructionAccounts,
	args *UpdateProviderInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, UpdateProviderInstructionDiscriminator)
	putOptionString(data, args.Name)
	putOptionString(data, args.Location)
	putOptionString(data, args.ContactEmail)
	putOptionBool(data, args.IsActive)

	return solana.Instruction{
		Program: p.ID,

		Data: data.Bytes(),

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.AdProvider,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ProviderMetadata,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
