package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var InitializeRegistryInstructionDiscriminator = instructionDiscriminator("initialize_registry")

type InitializeRegistryInstructionAccounts struct {
	Authority        ed25519.PublicKey
	ProviderRegistry ed25519.PublicKey
}

func (p *Program) NewInitializeRegistryInstruction(
	accounts *InitializeRegistryInstructionAccounts,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, InitializeRegistryInstructionDiscriminator)

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
				PublicKey:  accounts.ProviderRegistry,
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
