package soulboard

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var (
	CampaignPrefix         = []byte("campaign")
	AdProviderPrefix       = []byte("ad_provider")
	ProviderMetadataPrefix = []byte("provider_metadata")
	ProviderRegistryPrefix = []byte("provider_registry")
)

type GetCampaignAddressArgs struct {
	Authority  ed25519.PublicKey
	CampaignID uint32
}

func (p *Program) GetCampaignAddress(args *GetCampaignAddressArgs) (ed25519.PublicKey, uint8, error) {
	campaignIDBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(campaignIDBytes, args.CampaignID)

	return solana.FindProgramAddressAndBump(
		p.ID,
		CampaignPrefix,
		args.Authority,
		campaignIDBytes,
	)
}

type GetAdProviderAddressArgs struct {
	Authority ed25519.PublicKey
}

func (p *Program) GetAdProviderAddress(args *GetAdProviderAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		p.ID,
		AdProviderPrefix,
		args.Authority,
	)
}

type GetProviderMetadataAddressArgs struct {
	Authority ed25519.PublicKey
}

func (p *Program) GetProviderMetadataAddress(args *GetProviderMetadataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		p.ID,
		ProviderMetadataPrefix,
		args.Authority,
	)
}

func (p *Program) GetProviderRegistryAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		p.ID,
		ProviderRegistryPrefix,
	)
}
