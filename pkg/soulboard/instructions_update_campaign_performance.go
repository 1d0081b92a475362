package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var UpdateCampaignPerformanceInstructionDiscriminator = instructionDiscriminator("update_campaign_performance")

type UpdateCampaignPerformanceInstructionArgs struct {
	CampaignID uint32
	DeviceID   uint32
}

type UpdateCampaignPerformanceInstructionAccounts struct {
	Authority        ed25519.PublicKey
	Campaign         ed25519.PublicKey
	ProviderRegistry ed25519.PublicKey
	DeviceFeed       ed25519.PublicKey
	OracleProgram    ed25519.PublicKey
}

func (p *Program) NewUpdateCampaignPerformanceInstruction(
	accounts *UpdateCampaignPerformanceInstructionAccounts,
	args *UpdateCampaignPerformanceInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, UpdateCampaignPerformanceInstructionDiscriminator)
	putUint32(data, args.CampaignID)
	putUint32(data, args.DeviceID)

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
				PublicKey:  accounts.DeviceFeed,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.OracleProgram,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
