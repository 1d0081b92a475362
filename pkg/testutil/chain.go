package testutil

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"sync"

	"github.com/mr-tron/base58"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

// MockChain is an in memory stand in for a Solana RPC node.
type MockChain struct {
	mu sync.Mutex

	accounts map[string]solana.AccountInfo
	balances map[string]uint64

	blockhash solana.Blockhash
	slot      uint64

	submitted []solana.Transaction

	// OnSubmit, when set, runs under the lock for every submitted
	// transaction before it is recorded.
	OnSubmit func(txn solana.Transaction) error

	GetAccountInfoErr error
	SubmitErr         error
	ScanErr           error
}

func NewMockChain() *MockChain {
	m := &MockChain{
		accounts: make(map[string]solana.AccountInfo),
		balances: make(map[string]uint64),
		slot:     100,
	}
	rand.Read(m.blockhash[:])
	return m
}

func (m *MockChain) SetAccount(key ed25519.PublicKey, owner ed25519.PublicKey, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts[base58.Encode(key)] = solana.AccountInfo{
		Data:     data,
		Owner:    owner,
		Lamports: 1,
	}
}

func (m *MockChain) RemoveAccount(key ed25519.PublicKey) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.accounts, base58.Encode(key))
}

func (m *MockChain) SetBalance(key ed25519.PublicKey, lamports uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.balances[base58.Encode(key)] = lamports
}

func (m *MockChain) SetBlockhash(bh solana.Blockhash) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blockhash = bh
}

func (m *MockChain) Submitted() []solana.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]solana.Transaction, len(m.submitted))
	copy(out, m.submitted)
	return out
}

func (m *MockChain) GetAccountInfo(key ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetAccountInfoErr != nil {
		return solana.AccountInfo{}, m.GetAccountInfoErr
	}

	info, ok := m.accounts[base58.Encode(key)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}
	return info, nil
}

func (m *MockChain) GetBalance(key ed25519.PublicKey) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.balances[base58.Encode(key)], nil
}

func (m *MockChain) GetMinimumBalanceForRentExemption(size uint64) (uint64, error) {
	return 890880 + 6960*size, nil
}

func (m *MockChain) GetLatestBlockhash() (solana.Blockhash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.blockhash, nil
}

func (m *MockChain) GetSignatureStatus(sig solana.Signature, _ solana.Commitment) (*solana.SignatureStatus, error) {
	statuses, err := m.GetSignatureStatuses([]solana.Signature{sig})
	if err != nil {
		return nil, err
	}
	return statuses[0], nil
}

func (m *MockChain) GetSignatureStatuses(sigs []solana.Signature) ([]*solana.SignatureStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	statuses := make([]*solana.SignatureStatus, len(sigs))
	for i := range sigs {
		statuses[i] = &solana.SignatureStatus{
			Slot:               m.slot,
			ConfirmationStatus: "finalized",
		}
	}
	return statuses, nil
}

func (m *MockChain) GetSlot(_ solana.Commitment) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.slot, nil
}

func (m *MockChain) GetFilteredProgramAccounts(program ed25519.PublicKey, offset uint, filterValue []byte) ([]solana.ProgramAccount, uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ScanErr != nil {
		return nil, 0, m.ScanErr
	}

	var res []solana.ProgramAccount
	for encoded, info := range m.accounts {
		if !bytes.Equal(info.Owner, program) {
			continue
		}
		if int(offset)+len(filterValue) > len(info.Data) {
			continue
		}
		if !bytes.Equal(info.Data[offset:int(offset)+len(filterValue)], filterValue) {
			continue
		}

		key, err := base58.Decode(encoded)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, solana.ProgramAccount{PubKey: key, Data: info.Data})
	}
	return res, m.slot, nil
}

func (m *MockChain) RequestAirdrop(key ed25519.PublicKey, lamports uint64, _ solana.Commitment) (solana.Signature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.balances[base58.Encode(key)] += lamports

	var sig solana.Signature
	rand.Read(sig[:])
	return sig, nil
}

func (m *MockChain) SubmitTransaction(txn solana.Transaction, _ solana.Commitment) (solana.Signature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SubmitErr != nil {
		return solana.Signature{}, m.SubmitErr
	}
	if m.OnSubmit != nil {
		if err := m.OnSubmit(txn); err != nil {
			return solana.Signature{}, err
		}
	}

	m.submitted = append(m.submitted, txn)
	m.slot++
	return txn.Signatures[0], nil
}
