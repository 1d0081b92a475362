// Package registry ensures the on-chain provider registry singleton exists
// before the server starts routing requests that depend on it.
package registry

import (
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/soulboard/soulboard-server/pkg/operator"
	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
)

// Bootstrapper initializes the provider registry account exactly once. The
// registry is a program wide singleton, so initialization is idempotent:
// if the account already exists there is nothing to do.
type Bootstrapper struct {
	log      *logrus.Entry
	client   solana.Client
	program  *soulboard.Program
	operator *operator.Keypair

	mu          sync.Mutex
	initialized bool
}

func NewBootstrapper(client solana.Client, program *soulboard.Program, op *operator.Keypair) *Bootstrapper {
	return &Bootstrapper{
		log:      logrus.StandardLogger().WithField("type", "registry/bootstrapper"),
		client:   client,
		program:  program,
		operator: op,
	}
}

// EnsureInitialized checks for the registry account and creates it when
// absent. Concurrent callers are serialized so at most one initialization
// transaction is ever submitted.
func (b *Bootstrapper) EnsureInitialized() (created bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return false, nil
	}

	registryAddress, _, err := b.program.GetProviderRegistryAddress()
	if err != nil {
		return false, err
	}

	log := b.log.WithField("registry", base58.Encode(registryAddress))

	// The existence check and submission both run at finalized so we never
	// double-spend an initialize against a registry that is still confirming.
	_, err = b.client.GetAccountInfo(registryAddress, solana.CommitmentFinalized)
	if err == nil {
		log.Debug("registry already initialized")
		b.initialized = true
		return false, nil
	}
	if err != solana.ErrNoAccountInfo {
		return false, errors.Wrap(err, "failed to check registry account")
	}

	txn := solana.NewTransaction(
		b.operator.Public(),
		b.program.NewInitializeRegistryInstruction(
			&soulboard.InitializeRegistryInstructionAccounts{
				Authority:        b.operator.Public(),
				ProviderRegistry: registryAddress,
			},
		),
	)

	bh, err := b.client.GetLatestBlockhash()
	if err != nil {
		return false, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(bh)

	if err := txn.Sign(b.operator.Private()); err != nil {
		return false, errors.Wrap(err, "failed to sign initialize transaction")
	}

	sig, err := b.client.SubmitTransaction(txn, solana.CommitmentFinalized)
	if err != nil {
		return false, errors.Wrap(err, "failed to submit initialize transaction")
	}

	if _, err := b.client.GetSignatureStatus(sig, solana.CommitmentFinalized); err != nil {
		return false, errors.Wrap(err, "initialize transaction failed to finalize")
	}

	log.WithField("signature", base58.Encode(sig[:])).Info("initialized provider registry")
	b.initialized = true
	return true, nil
}
