package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var AddBudgetInstructionDiscriminator = instructionDiscriminator("add_budget")

type AddBudgetInstructionArgs struct {
	CampaignID uint32
	Amount     uint64
}

type AddBudgetInstructionAccounts struct {
	Authority ed25519.PublicKey
	Campaign  ed25519.PublicKey
}

func (p *Program) NewAddBudgetInstruction(
	accounts *AddBudgetInstructionAccounts,
	args *AddBudgetInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, AddBudgetInstructionDiscriminator)
	putUint32(data, args.CampaignID)
	putUint64(data, args.Amount)

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
				PublicKey:  accounts.Campaign,
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
