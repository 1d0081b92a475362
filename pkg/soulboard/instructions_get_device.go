package soulboard

import (
	"bytes"
	"crypto/ed25519"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var GetDeviceInstructionDiscriminator = instructionDiscriminator("get_device")

type GetDeviceInstructionArgs struct {
	DeviceID uint32
}

type GetDeviceInstructionAccounts struct {
	Authority        ed25519.PublicKey
	AdProvider       ed25519.PublicKey
	ProviderMetadata ed25519.PublicKey
}

func (p *Program) NewGetDeviceInstruction(
	accounts *GetDeviceInstructionAccounts,
	args *GetDeviceInstructionArgs,
) solana.Instruction {
	data := new(bytes.Buffer)

	putDiscriminator(data, GetDeviceInstructionDiscriminator)
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
