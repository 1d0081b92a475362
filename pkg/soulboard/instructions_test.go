package soulboard

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulboard/soulboard-server/pkg/testutil"
)

func TestInstructionDiscriminators(t *testing.T) {
	assert.Equal(t, []byte{111, 131, 187, 98, 160, 193, 114, 244}, CreateCampaignInstructionDiscriminator)
	assert.Equal(t, []byte{8, 21, 47, 83, 188, 233, 214, 5}, AddBudgetInstructionDiscriminator)
	assert.Equal(t, []byte{90, 50, 252, 114, 26, 199, 72, 174}, AddLocationInstructionDiscriminator)
	assert.Equal(t, []byte{85, 2, 35, 12, 215, 19, 137, 25}, RemoveLocationInstructionDiscriminator)
	assert.Equal(t, []byte{238, 164, 40, 81, 211, 55, 55, 26}, CompleteCampaignInstructionDiscriminator)
	assert.Equal(t, []byte{46, 9, 165, 255, 190, 253, 104, 103}, CalculateAndDistributeFeesInstructionDiscriminator)
	assert.Equal(t, []byte{254, 209, 54, 184, 46, 197, 109, 78}, RegisterProviderInstructionDiscriminator)
	assert.Equal(t, []byte{52, 208, 141, 191, 164, 54, 108, 150}, UpdateProviderInstructionDiscriminator)
	assert.Equal(t, []byte{187, 176, 72, 3, 250, 21, 28, 62}, GetDeviceInstructionDiscriminator)
	assert.Equal(t, []byte{189, 181, 20, 17, 174, 57, 249, 59}, InitializeRegistryInstructionDiscriminator)
	assert.Equal(t, []byte{73, 181, 232, 2, 99, 47, 150, 179}, AddKeeperInstructionDiscriminator)
	assert.Equal(t, []byte{193, 167, 169, 215, 44, 36, 88, 247}, RemoveKeeperInstructionDiscriminator)
	assert.Equal(t, []byte{6, 132, 233, 254, 241, 87, 247, 185}, WithdrawEarningsInstructionDiscriminator)
	assert.Equal(t, []byte{197, 49, 129, 45, 219, 139, 237, 225}, UpdateCampaignPerformanceInstructionDiscriminator)
	assert.Equal(t, []byte{82, 15, 164, 198, 204, 191, 49, 81}, GetAllProvidersInstructionDiscriminator)
}

func TestNewCreateCampaignInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	ix := testProgram.NewCreateCampaignInstruction(
		&CreateCampaignInstructionAccounts{
			Authority: keys[0],
			Campaign:  keys[1],
		},
		&CreateCampaignInstructionArgs{
			CampaignID:          3,
			CampaignName:        "Launch",
			CampaignDescription: "desc",
			RunningDays:         14,
			HoursPerDay:         8,
			BaseFeePerHour:      1_000_000_000,
		},
	)

	assert.EqualValues(t, PROGRAM_ID, ix.Program)

	require.Len(t, ix.Accounts, 3)
	assert.EqualValues(t, keys[0], ix.Accounts[0].PublicKey)
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.True(t, ix.Accounts[0].IsWritable)
	assert.EqualValues(t, keys[1], ix.Accounts[1].PublicKey)
	assert.False(t, ix.Accounts[1].IsSigner)
	assert.True(t, ix.Accounts[1].IsWritable)
	assert.EqualValues(t, SYSTEM_PROGRAM_ID, ix.Accounts[2].PublicKey)
	assert.False(t, ix.Accounts[2].IsSigner)
	assert.False(t, ix.Accounts[2].IsWritable)

	// discriminator | u32 id | string name | string desc | u32 days | u32 hours | u64 fee
	data := ix.Data
	assert.Equal(t, CreateCampaignInstructionDiscriminator, data[:8])
	assert.EqualValues(t, 3, binary.LittleEndian.Uint32(data[8:12]))
	assert.EqualValues(t, 6, binary.LittleEndian.Uint32(data[12:16]))
	assert.Equal(t, "Launch", string(data[16:22]))
	assert.EqualValues(t, 4, binary.LittleEndian.Uint32(data[22:26]))
	assert.Equal(t, "desc", string(data[26:30]))
	assert.EqualValues(t, 14, binary.LittleEndian.Uint32(data[30:34]))
	assert.EqualValues(t, 8, binary.LittleEndian.Uint32(data[34:38]))
	assert.EqualValues(t, 1_000_000_000, binary.LittleEndian.Uint64(data[38:46]))
	assert.Len(t, data, 46)
}

func TestNewAddBudgetInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	ix := testProgram.NewAddBudgetInstruction(
		&AddBudgetInstructionAccounts{
			Authority: keys[0],
			Campaign:  keys[1],
		},
		&AddBudgetInstructionArgs{
			CampaignID: 3,
			Amount:     500_000_000,
		},
	)

	require.Len(t, ix.Accounts, 3)
	assert.Equal(t, AddBudgetInstructionDiscriminator, ix.Data[:8])
	assert.EqualValues(t, 3, binary.LittleEndian.Uint32(ix.Data[8:12]))
	assert.EqualValues(t, 500_000_000, binary.LittleEndian.Uint64(ix.Data[12:20]))
	assert.Len(t, ix.Data, 20)
}

func TestNewAddLocationInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 5)

	ix := testProgram.NewAddLocationInstruction(
		&AddLocationInstructionAccounts{
			Authority:        keys[0],
			Campaign:         keys[1],
			AdProvider:       keys[2],
			ProviderMetadata: keys[3],
		},
		&AddLocationInstructionArgs{
			CampaignID: 3,
			Location:   keys[4],
			DeviceID:   17,
		},
	)

	require.Len(t, ix.Accounts, 5)
	for i := 0; i < 4; i++ {
		assert.True(t, ix.Accounts[i].IsWritable)
	}
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.EqualValues(t, SYSTEM_PROGRAM_ID, ix.Accounts[4].PublicKey)

	assert.Equal(t, AddLocationInstructionDiscriminator, ix.Data[:8])
	assert.EqualValues(t, 3, binary.LittleEndian.Uint32(ix.Data[8:12]))
	assert.EqualValues(t, []byte(keys[4]), ix.Data[12:44])
	assert.EqualValues(t, 17, binary.LittleEndian.Uint32(ix.Data[44:48]))
	assert.Len(t, ix.Data, 48)
}

func TestNewUpdateProviderInstruction_Options(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	accounts := &UpdateProviderInstructionAccounts{
		Authority:        keys[0],
		AdProvider:       keys[1],
		ProviderMetadata: keys[2],
	}

	// All fields omitted: four zero tags.
	ix := testProgram.NewUpdateProviderInstruction(accounts, &UpdateProviderInstructionArgs{})
	assert.Equal(t, []byte{0, 0, 0, 0}, ix.Data[8:12])
	assert.Len(t, ix.Data, 12)

	name := "Harbor"
	active := true
	ix = testProgram.NewUpdateProviderInstruction(accounts, &UpdateProviderInstructionArgs{
		Name:     &name,
		IsActive: &active,
	})

	data := ix.Data[8:]
	assert.EqualValues(t, 1, data[0])
	assert.EqualValues(t, 6, binary.LittleEndian.Uint32(data[1:5]))
	assert.Equal(t, "Harbor", string(data[5:11]))
	assert.EqualValues(t, 0, data[11]) // location omitted
	assert.EqualValues(t, 0, data[12]) // contact email omitted
	assert.Equal(t, []byte{1, 1}, data[13:15])
}

func TestNewUpdateCampaignPerformanceInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 5)

	ix := testProgram.NewUpdateCampaignPerformanceInstruction(
		&UpdateCampaignPerformanceInstructionAccounts{
			Authority:        keys[0],
			Campaign:         keys[1],
			ProviderRegistry: keys[2],
			DeviceFeed:       keys[3],
			OracleProgram:    keys[4],
		},
		&UpdateCampaignPerformanceInstructionArgs{
			CampaignID: 3,
			DeviceID:   17,
		},
	)

	require.Len(t, ix.Accounts, 5)
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.True(t, ix.Accounts[1].IsWritable)
	assert.False(t, ix.Accounts[2].IsWritable)
	assert.False(t, ix.Accounts[3].IsWritable)
	assert.EqualValues(t, keys[4], ix.Accounts[4].PublicKey)

	assert.Equal(t, UpdateCampaignPerformanceInstructionDiscriminator, ix.Data[:8])
	assert.Len(t, ix.Data, 16)
}

func TestNewInitializeRegistryInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	ix := testProgram.NewInitializeRegistryInstruction(&InitializeRegistryInstructionAccounts{
		Authority:        keys[0],
		ProviderRegistry: keys[1],
	})

	require.Len(t, ix.Accounts, 3)
	assert.Equal(t, InitializeRegistryInstructionDiscriminator, ix.Data)
}
