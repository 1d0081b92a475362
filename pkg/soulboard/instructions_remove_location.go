package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var RemoveLocationInstructionDiscriminator = instructionDiscriminator("remove_location")

type RemoveLocationInstructionArgs struct {
	CampaignID uint32
	Location   ed25519.PublicKey
	DeviceID   uint32
}

type RemoveLocationInstructionAccounts struct {
	Authority        ed25519.PublicKey
	Campaign         ed25519.PublicKey
	AdProvider       ed25519.PublicKey
	ProviderMetadata ed25519.PublicKey
}

func (p *Program) NewRemoveLocationInstruction(
	accounts *RemoveLocationInstructionAccounts,
	args *RemoveLocationInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, RemoveLocationInstructionDiscriminator)
	putUint32(data, args.CampaignID)
	putKey(data, args.Location)
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
				PublicKey:  accounts.AdProvider,
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
