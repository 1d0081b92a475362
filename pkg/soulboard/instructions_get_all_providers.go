package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var GetAllProvidersInstructionDiscriminator = instructionDiscriminator("get_all_providers")

type GetAllProvidersInstructionAccounts struct {
	ProviderRegistry ed25519.PublicKey
}

func (p *Program) NewGetAllProvidersInstruction(
	accounts *GetAllProvidersInstructionAccounts,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, GetAllProvidersInstructionDiscriminator)

	return solana.Instruction{
		Program: p.ID,

		Data: data.Bytes(),

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.ProviderRegistry,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
