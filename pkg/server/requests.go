package server

import (
	"crypto/ed25519"
	"math"
	"strings"
)

// walletRef identifies the wallet that will sign and pay for an assembled
// transaction.
type walletRef struct {
	Address string `json:"address"`
	Type    string `json:"type,omitempty"`
}

// fieldErrors accumulates per-field validation failures so a response can
// name everything wrong with a request at once, before any chain I/O.
type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return errInvalidFields(f)
}

func (f fieldErrors) checkWallet(wallet walletRef) (ed25519.PublicKey, bool) {
	key, ok := parseAddress(wallet.Address)
	if !ok {
		f["wallet.address"] = "must be a base58 encoded public key"
		return nil, false
	}
	return key, true
}

func (f fieldErrors) checkAddress(field, value string) (ed25519.PublicKey, bool) {
	key, ok := parseAddress(value)
	if !ok {
		f[field] = "must be a base58 encoded public key"
		return nil, false
	}
	return key, true
}

func (f fieldErrors) checkID(field string, value int64) uint32 {
	if value < 1 || value > math.MaxUint32 {
		f[field] = "must be a positive integer"
		return 0
	}
	return uint32(value)
}

func (f fieldErrors) checkString(field, value string, min, max int) {
	if len(value) < min || len(value) > max {
		f[field] = "length out of range"
	}
}

func (f fieldErrors) checkRange(field string, value, min, max int64) uint32 {
	if value < min || value > max {
		f[field] = "out of range"
		return 0
	}
	return uint32(value)
}

// maxAmountSol keeps the lamport conversion inside uint64 range.
const maxAmountSol = float64(math.MaxUint64) / lamportsPerSol

func (f fieldErrors) checkAmount(field string, value float64) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		f[field] = "must be positive"
		return
	}
	if value >= maxAmountSol {
		f[field] = "exceeds the maximum representable amount"
	}
}

func (f fieldErrors) checkEmail(field, value string) {
	if len(value) > 150 || !strings.Contains(value, "@") {
		f[field] = "must be a valid email address"
	}
}
