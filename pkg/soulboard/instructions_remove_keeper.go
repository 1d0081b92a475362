package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var RemoveKeeperInstructionDiscriminator = instructionDiscriminator("remove_keeper")

type RemoveKeeperInstructionArgs struct {
	Keeper ed25519.PublicKey
}

type RemoveKeeperInstructionAccounts struct {
	Authority        ed25519.PublicKey
	ProviderRegistry ed25519.PublicKey
}

func (p *Program) NewRemoveKeeperInstruction(
	accounts *RemoveKeeperInstructionAccounts,
	args *RemoveKeeperInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, RemoveKeeperInstructionDiscriminator)
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
