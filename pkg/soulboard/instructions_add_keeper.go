package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var AddKeeperInstructionDiscriminator = instructionDiscriminator("add_keeper")

type AddKeeperInstructionArgs struct {
	Keeper ed25519.PublicKey
}

type AddKeeperInstructionAccounts struct {
	Authority        ed25519.PublicKey
	ProviderRegistry ed25519.PublicKey
}

func (p *Program) NewAddKeeperInstruction(
	accounts *AddKeeperInstructionAccounts,
	args *AddKeeperInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, AddKeeperInstructionDiscriminator)
	putKey(data, args.Keeper)

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
