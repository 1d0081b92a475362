package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var CompleteCampaignInstructionDiscriminator = instructionDiscriminator("complete_campaign")

type CompleteCampaignInstructionArgs struct {
	CampaignID uint32
}

type CompleteCampaignInstructionAccounts struct {
	Authority        ed25519.PublicKey
	Campaign         ed25519.PublicKey
	ProviderRegistry ed25519.PublicKey
}

func (p *Program) NewCompleteCampaignInstruction(
	accounts *CompleteCampaignInstructionAccounts,
	args *CompleteCampaignInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, CompleteCampaignInstructionDiscriminator)
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
				PublicKey:  accounts.ProviderRegistry,
				IsWritable: false,
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
