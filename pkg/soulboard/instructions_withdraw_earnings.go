package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var WithdrawEarningsInstructionDiscriminator = instructionDiscriminator("withdraw_earnings")

type WithdrawEarningsInstructionArgs struct {
	CampaignID uint32
}

type WithdrawEarningsInstructionAccounts struct {
	Authority  ed25519.PublicKey
	Campaign   ed25519.PublicKey
	AdProvider ed25519.PublicKey
}

func (p *Program) NewWithdrawEarningsInstruction(
	accounts *WithdrawEarningsInstructionAccounts,
	args *WithdrawEarningsInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, WithdrawEarningsInstructionDiscriminator)
	putUint32(data, args.CampaignID)

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
				PublicKey:  accounts.AdProvider,
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
