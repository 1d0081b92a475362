package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var AddLocationInstructionDiscriminator = instructionDiscriminator("add_location")

type AddLocationInstructionArgs struct {
	CampaignID uint32
	Location   ed25519.PublicKey
	DeviceID   uint32
}

type AddLocationInstructionAccounts struct {
	Authority        ed25519.PublicKey
	Campaign         ed25519.PublicKey
	AdProvider       ed25519.PublicKey
	ProviderMetadata ed25519.PublicKey
}

func (p *Program) NewAddLocationInstruction(
	accounts *AddLocationInstructionAccounts,
	args *AddLocationInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, AddLocationInstructionDiscriminator)
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
