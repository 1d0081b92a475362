package soulboard

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

// Account data layouts put the authority key immediately after the 8 byte
// discriminator, which is what makes the owner scans below possible.
const authorityFieldOffset = 8

func (p *Program) GetCampaign(client solana.Client, address ed25519.PublicKey) (*CampaignAccount, error) {
	info, err := client.GetAccountInfo(address, p.Commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get campaign account")
	}

	var account CampaignAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &account, nil
}

func (p *Program) GetCampaignByID(client solana.Client, authority ed25519.PublicKey, campaignID uint32) (*CampaignAccount, error) {
	address, _, err := p.GetCampaignAddress(&GetCampaignAddressArgs{
		Authority:  authority,
		CampaignID: campaignID,
	})
	if err != nil {
		return nil, err
	}
	return p.GetCampaign(client, address)
}

// GetCampaignsByAuthority scans the program for campaign accounts whose
// authority matches. The scan also matches non campaign accounts that share
// the authority, so anything failing the discriminator check is skipped.
func (p *Program) GetCampaignsByAuthority(client solana.Client, authority ed25519.PublicKey) ([]*CampaignAccount, error) {
	raw, _, err := client.GetFilteredProgramAccounts(p.ID, authorityFieldOffset, authority)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan campaign accounts")
	}

	var campaigns []*CampaignAccount
	for _, programAccount := range raw {
		var account CampaignAccount
		if err := account.Unmarshal(programAccount.Data); err != nil {
			continue
		}
		campaigns = append(campaigns, &account)
	}
	return campaigns, nil
}

// GetAllCampaigns lists every campaign account owned by the program.
func (p *Program) GetAllCampaigns(client solana.Client) ([]*CampaignAccount, error) {
	raw, _, err := client.GetFilteredProgramAccounts(p.ID, 0, CampaignAccountDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan campaign accounts")
	}

	var campaigns []*CampaignAccount
	for _, programAccount := range raw {
		var account CampaignAccount
		if err := account.Unmarshal(programAccount.Data); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, &account)
	}
	return campaigns, nil
}

func (p *Program) GetAdProvider(client solana.Client, address ed25519.PublicKey) (*AdProviderAccount, error) {
	info, err := client.GetAccountInfo(address, p.Commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get ad provider account")
	}

	var account AdProviderAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &account, nil
}

func (p *Program) GetAdProviderByAuthority(client solana.Client, authority ed25519.PublicKey) (*AdProviderAccount, error) {
	address, _, err := p.GetAdProviderAddress(&GetAdProviderAddressArgs{Authority: authority})
	if err != nil {
		return nil, err
	}
	return p.GetAdProvider(client, address)
}

func (p *Program) GetProviderMetadata(client solana.Client, address ed25519.PublicKey) (*ProviderMetadataAccount, error) {
	info, err := client.GetAccountInfo(address, p.Commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get provider metadata account")
	}

	var account ProviderMetadataAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &account, nil
}

func (p *Program) GetProviderMetadataByAuthority(client solana.Client, authority ed25519.PublicKey) (*ProviderMetadataAccount, error) {
	address, _, err := p.GetProviderMetadataAddress(&GetProviderMetadataAddressArgs{Authority: authority})
	if err != nil {
		return nil, err
	}
	return p.GetProviderMetadata(client, address)
}

// GetAllProviderMetadata lists every provider metadata account owned by the
// program, using a discriminator scan at offset zero.
func (p *Program) GetAllProviderMetadata(client solana.Client) ([]*ProviderMetadataAccount, error) {
	raw, _, err := client.GetFilteredProgramAccounts(p.ID, 0, ProviderMetadataAccountDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan provider metadata accounts")
	}

	var providers []*ProviderMetadataAccount
	for _, programAccount := range raw {
		var account ProviderMetadataAccount
		if err := account.Unmarshal(programAccount.Data); err != nil {
			return nil, err
		}
		providers = append(providers, &account)
	}
	return providers, nil
}

// GetAllAdProviders lists every ad provider account owned by the program.
func (p *Program) GetAllAdProviders(client solana.Client) ([]*AdProviderAccount, error) {
	raw, _, err := client.GetFilteredProgramAccounts(p.ID, 0, AdProviderAccountDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan ad provider accounts")
	}

	var providers []*AdProviderAccount
	for _, programAccount := range raw {
		var account AdProviderAccount
		if err := account.Unmarshal(programAccount.Data); err != nil {
			return nil, err
		}
		providers = append(providers, &account)
	}
	return providers, nil
}

func (p *Program) GetProviderRegistry(client solana.Client) (*ProviderRegistryAccount, error) {
	address, _, err := p.GetProviderRegistryAddress()
	if err != nil {
		return nil, err
	}

	info, err := client.GetAccountInfo(address, p.Commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get provider registry account")
	}

	var account ProviderRegistryAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &account, nil
}
