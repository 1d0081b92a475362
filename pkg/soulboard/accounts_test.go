package soulboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulboard/soulboard-server/pkg/testutil"
)

func TestAccountDiscriminators(t *testing.T) {
	assert.Equal(t, []byte{50, 40, 49, 11, 157, 220, 229, 192}, CampaignAccountDiscriminator)
	assert.Equal(t, []byte{69, 236, 248, 123, 232, 16, 180, 43}, AdProviderAccountDiscriminator)
	assert.Equal(t, []byte{235, 154, 61, 218, 139, 14, 188, 206}, ProviderMetadataAccountDiscriminator)
	assert.Equal(t, []byte{27, 101, 68, 38, 206, 197, 61, 114}, ProviderRegistryAccountDiscriminator)
}

func TestCampaignAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 4)

	expected := CampaignAccount{
		Authority:           keys[0],
		CampaignID:          7,
		CampaignName:        "Launch week",
		CampaignDescription: "Billboards near the waterfront",
		CampaignBudget:      math.MaxUint64 - 1,
		CampaignStatus:      CampaignStatusActive,
		CampaignProviders:   keys[1:3],
		CampaignLocations:   keys[3:4],
		RunningDays:         30,
		HoursPerDay:         12,
		BaseFeePerHour:      2_500_000_000,
		PlatformFee:         125_000_000,
		TotalDistributed:    0,
		CampaignPerformance: []ProviderPerformance{
			{
				Provider:             keys[1],
				DeviceID:             9,
				TotalViews:           1 << 54,
				TotalTaps:            42,
				CalculatedEarnings:   990_000_000,
				BaseFeeEarned:        900_000_000,
				PerformanceFeeEarned: 90_000_000,
			},
		},
	}

	var actual CampaignAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)
}

func TestCampaignAccount_EmptyVectors(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 1)

	account := CampaignAccount{
		Authority:           keys[0],
		CampaignID:          1,
		CampaignName:        "x",
		CampaignDescription: "y",
		CampaignStatus:      CampaignStatusCompleted,
	}

	var actual CampaignAccount
	require.NoError(t, actual.Unmarshal(account.Marshal()))
	assert.Empty(t, actual.CampaignProviders)
	assert.Empty(t, actual.CampaignLocations)
	assert.Empty(t, actual.CampaignPerformance)
	assert.Equal(t, CampaignStatusCompleted, actual.CampaignStatus)
}

func TestCampaignAccount_InvalidData(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 1)

	account := CampaignAccount{
		Authority:    keys[0],
		CampaignID:   1,
		CampaignName: "short lived",
	}
	data := account.Marshal()

	var actual CampaignAccount
	assert.Equal(t, ErrInvalidAccountData, actual.Unmarshal(data[:len(data)-3]))

	// Wrong discriminator
	provider := AdProviderAccount{Authority: keys[0]}
	assert.Equal(t, ErrInvalidAccountData, actual.Unmarshal(provider.Marshal()))

	assert.Equal(t, ErrInvalidAccountData, actual.Unmarshal(nil))
}

func TestAdProviderAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 1)

	expected := AdProviderAccount{
		Authority: keys[0],
		Devices: []Device{
			{DeviceID: 1, DeviceState: DeviceStateAvailable},
			{DeviceID: 2, DeviceState: DeviceStateBooked},
			{DeviceID: 3, DeviceState: DeviceStatePaused},
		},
		Name:            "Harbor Displays",
		Location:        "Pier 7",
		ContactEmail:    "ops@harbordisplays.example",
		Rating:          4,
		TotalCampaigns:  11,
		IsActive:        true,
		TotalEarnings:   math.MaxUint64,
		PendingPayments: 1 << 53,
	}

	var actual AdProviderAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)

	available := actual.AvailableDevices()
	require.Len(t, available, 1)
	assert.EqualValues(t, 1, available[0].DeviceID)
}

func TestProviderMetadataAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	expected := ProviderMetadataAccount{
		Authority:        keys[0],
		ProviderPda:      keys[1],
		Name:             "Harbor Displays",
		Location:         "Pier 7",
		DeviceCount:      3,
		AvailableDevices: 1,
		Rating:           4,
		IsActive:         true,
	}

	var actual ProviderMetadataAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)
}

func TestProviderRegistryAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 5)

	expected := ProviderRegistryAccount{
		Deployer:       keys[0],
		TotalProviders: 2,
		Providers:      keys[1:3],
		Keepers:        keys[3:5],
	}

	var actual ProviderRegistryAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)

	assert.True(t, actual.IsKeeper(keys[3]))
	assert.False(t, actual.IsKeeper(keys[1]))
}
