package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var RegisterProviderInstructionDiscriminator = instructionDiscriminator("register_provider")

type RegisterProviderInstructionArgs struct {
	Name         string
	Location     string
	ContactEmail string
}

type RegisterProviderInstructionAccounts struct {
	Authority        ed25519.PublicKey
	AdProvider       ed25519.PublicKey
	ProviderRegistry ed25519.PublicKey
	ProviderMetadata ed25519.PublicKey
}

func (p *Program) NewRegisterProviderInstruction(
	accounts *RegisterProviderInstructionAccounts,
	args *RegisterProviderInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, RegisterProviderInstructionDiscriminator)
	putString(data, args.Name)
	putString(data, args.Location)
	putString(data, args.ContactEmail)

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
				PublicKey:  accounts.ProviderRegistry,
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
