package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulboard/soulboard-server/pkg/operator"
	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
	"github.com/soulboard/soulboard-server/pkg/testutil"
)

var testProgram = soulboard.NewProgram(soulboard.PROGRAM_ID, solana.CommitmentConfirmed)

func newTestBootstrapper(t *testing.T) (*Bootstrapper, *testutil.MockChain) {
	priv := testutil.GenerateSolanaKeypair(t)
	chain := testutil.NewMockChain()
	return NewBootstrapper(chain, testProgram, operator.NewKeypair(priv)), chain
}

func TestBootstrapper_InitializesAbsentRegistry(t *testing.T) {
	b, chain := newTestBootstrapper(t)

	created, err := b.EnsureInitialized()
	require.NoError(t, err)
	assert.True(t, created)

	submitted := chain.Submitted()
	require.Len(t, submitted, 1)

	txn := submitted[0]
	require.Len(t, txn.Message.Instructions, 1)

	registryAddress, _, err := testProgram.GetProviderRegistryAddress()
	require.NoError(t, err)

	program := txn.Message.Accounts[txn.Message.Instructions[0].ProgramIndex]
	assert.EqualValues(t, soulboard.PROGRAM_ID, program)
	assert.EqualValues(t, b.operator.Public(), txn.Message.Accounts[0])
	assert.Contains(t, txn.Message.Accounts, registryAddress)
	assert.EqualValues(t, soulboard.InitializeRegistryInstructionDiscriminator, txn.Message.Instructions[0].Data[:8])

	// The bootstrapper signs on behalf of the operator.
	var emptySig solana.Signature
	assert.NotEqual(t, emptySig, txn.Signatures[0])
}

func TestBootstrapper_AlreadyInitialized(t *testing.T) {
	b, chain := newTestBootstrapper(t)

	registryAddress, _, err := testProgram.GetProviderRegistryAddress()
	require.NoError(t, err)

	registry := &soulboard.ProviderRegistryAccount{
		Deployer: b.operator.Public(),
	}
	chain.SetAccount(registryAddress, soulboard.PROGRAM_ID, registry.Marshal())

	created, err := b.EnsureInitialized()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, chain.Submitted())
}

func TestBootstrapper_Concurrent(t *testing.T) {
	b, chain := newTestBootstrapper(t)

	var wg sync.WaitGroup
	createdCount := make(chan bool, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			created, err := b.EnsureInitialized()
			assert.NoError(t, err)
			createdCount <- created
		}()
	}
	wg.Wait()
	close(createdCount)

	var total int
	for created := range createdCount {
		if created {
			total++
		}
	}
	assert.Equal(t, 1, total)
	assert.Len(t, chain.Submitted(), 1)
}

// Two server processes can race the first initialization. The chain accepts
// one initialize and rejects the duplicate, which the loser surfaces; its next
// attempt re-checks existence and becomes a no-op.
func TestBootstrapper_DuplicateInitRejectedByChain(t *testing.T) {
	first, chain := newTestBootstrapper(t)
	second := NewBootstrapper(chain, testProgram, operator.NewKeypair(testutil.GenerateSolanaKeypair(t)))

	var initializes int
	chain.OnSubmit = func(txn solana.Transaction) error {
		initializes++
		if initializes > 1 {
			return assert.AnError
		}
		return nil
	}

	created, err := first.EnsureInitialized()
	require.NoError(t, err)
	assert.True(t, created)

	// The second process has not observed the account yet and loses the race.
	_, err = second.EnsureInitialized()
	assert.Error(t, err)

	// Once the winning initialize lands, the retry finds the account.
	registryAddress, _, err := testProgram.GetProviderRegistryAddress()
	require.NoError(t, err)
	chain.SetAccount(registryAddress, soulboard.PROGRAM_ID, (&soulboard.ProviderRegistryAccount{
		Deployer: first.operator.Public(),
	}).Marshal())

	created, err = second.EnsureInitialized()
	require.NoError(t, err)
	assert.False(t, created)

	assert.Len(t, chain.Submitted(), 1)
}

func TestBootstrapper_SubmitFailure(t *testing.T) {
	b, chain := newTestBootstrapper(t)
	chain.SubmitErr = assert.AnError

	_, err := b.EnsureInitialized()
	assert.Error(t, err)

	// A failed submission must not latch the initialized flag.
	chain.SubmitErr = nil
	created, err := b.EnsureInitialized()
	require.NoError(t, err)
	assert.True(t, created)
}
