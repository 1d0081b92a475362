package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var CreateCampaignInstructionDiscriminator = instructionDiscriminator("create_campaign")

type CreateCampaignInstructionArgs struct {
	CampaignID          uint32
	CampaignName        string
	CampaignDescription string
	RunningDays         uint32
	HoursPerDay         uint32
	BaseFeePerHour      uint64
}

type CreateCampaignInstructionAccounts struct {
	Authority ed25519.PublicKey
	Campaign  ed25519.PublicKey
}

func (p *Program) NewCreateCampaignInstruction(
	accounts *CreateCampaignInstructionAccounts,
	args *CreateCampaignInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, CreateCampaignInstructionDiscriminator)
	putUint32(data, args.CampaignID)
	putString(data, args.CampaignName)
	putString(data, args.CampaignDescription)
	putUint32(data, args.RunningDays)
	putUint32(data, args.HoursPerDay)
	putUint64(data, args.BaseFeePerHour)

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
