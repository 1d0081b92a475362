package soulboard

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/testutil"
)

var testProgram = NewProgram(PROGRAM_ID, solana.CommitmentConfirmed)

func TestGetCampaignAddress(t *testing.T) {
	authority := testutil.GenerateSolanaKeys(t, 1)[0]

	address, bump, err := testProgram.GetCampaignAddress(&GetCampaignAddressArgs{
		Authority:  authority,
		CampaignID: 42,
	})
	require.NoError(t, err)

	campaignIDBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(campaignIDBytes, 42)

	expected, err := solana.CreateProgramAddress(
		PROGRAM_ID,
		CampaignPrefix,
		authority,
		campaignIDBytes,
		[]byte{bump},
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected, address)

	// Derivation is deterministic
	again, _, err := testProgram.GetCampaignAddress(&GetCampaignAddressArgs{
		Authority:  authority,
		CampaignID: 42,
	})
	require.NoError(t, err)
	assert.EqualValues(t, address, again)

	// A different campaign id lands elsewhere
	other, _, err := testProgram.GetCampaignAddress(&GetCampaignAddressArgs{
		Authority:  authority,
		CampaignID: 43,
	})
	require.NoError(t, err)
	assert.NotEqualValues(t, address, other)
}

// Seed prefixes must keep the address families disjoint no matter which
// authority or campaign id they are derived from. Collisions across families
// would let one account kind shadow another, so check a pile of random
// authorities rather than a single example.
func TestAddressDomainSeparation(t *testing.T) {
	registry, _, err := testProgram.GetProviderRegistryAddress()
	require.NoError(t, err)

	seen := map[string]string{
		string(registry): "registry",
	}
	record := func(address []byte, family string) {
		prev, ok := seen[string(address)]
		require.False(t, ok, "address collision between %s and %s", prev, family)
		seen[string(address)] = family
	}

	for _, authority := range testutil.GenerateSolanaKeys(t, 32) {
		provider, _, err := testProgram.GetAdProviderAddress(&GetAdProviderAddressArgs{Authority: authority})
		require.NoError(t, err)
		record(provider, "ad_provider")

		metadata, _, err := testProgram.GetProviderMetadataAddress(&GetProviderMetadataAddressArgs{Authority: authority})
		require.NoError(t, err)
		record(metadata, "provider_metadata")

		for campaignID := uint32(1); campaignID <= 4; campaignID++ {
			campaign, _, err := testProgram.GetCampaignAddress(&GetCampaignAddressArgs{
				Authority:  authority,
				CampaignID: campaignID,
			})
			require.NoError(t, err)
			record(campaign, "campaign")
		}
	}

	// 32 authorities x (provider + metadata + 4 campaigns) + the registry.
	assert.Len(t, seen, 32*6+1)
}

func TestGetProviderRegistryAddress_Static(t *testing.T) {
	a, bumpA, err := testProgram.GetProviderRegistryAddress()
	require.NoError(t, err)
	b, bumpB, err := testProgram.GetProviderRegistryAddress()
	require.NoError(t, err)

	assert.EqualValues(t, a, b)
	assert.Equal(t, bumpA, bumpB)
}
