package server

import (
	"net/http"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulboard/soulboard-server/pkg/soulboard"
	"github.com/soulboard/soulboard-server/pkg/testutil"
)

func TestContractCall_AddBudget(t *testing.T) {
	s, _ := newTestServer(t)

	authority := testutil.GenerateSolanaKeys(t, 1)[0]
	status, body := doRequest(t, s, http.MethodPost, "/v1/contracts/call", map[string]interface{}{
		"wallet": map[string]string{"address": base58.Encode(authority)},
		"method": "addBudget",
		"args":   []interface{}{3, 1.25},
	})
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "addBudget", body["method"])
	assert.Equal(t, base58.Encode(soulboard.PROGRAM_ID), body["programId"])

	transaction := decodeTransaction(t, body)
	require.Len(t, transaction.Message.Instructions, 1)
	assert.EqualValues(t, soulboard.AddBudgetInstructionDiscriminator, transaction.Message.Instructions[0].Data[:8])
}

func TestContractCall_MissingArgs(t *testing.T) {
	s, _ := newTestServer(t)

	authority := base58.Encode(testutil.GenerateSolanaKeys(t, 1)[0])
	status, body := doRequest(t, s, http.MethodPost, "/v1/contracts/call", map[string]interface{}{
		"wallet": map[string]string{"address": authority},
		"method": "addBudget",
	})
	require.Equal(t, http.StatusBadRequest, status)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "invalid_input", errBody["code"])
}

func TestContractCall_Unimplemented(t *testing.T) {
	s, _ := newTestServer(t)

	authority := base58.Encode(testutil.GenerateSolanaKeys(t, 1)[0])
	status, body := doRequest(t, s, http.MethodPost, "/v1/contracts/call", map[string]interface{}{
		"wallet": map[string]string{"address": authority},
		"method": "withdrawAll",
	})
	require.Equal(t, http.StatusBadRequest, status)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "unimplemented", errBody["code"])
	assert.Contains(t, errBody["message"], "available methods")
	assert.Contains(t, errBody["message"], "addBudget")
}

func TestGetAccount(t *testing.T) {
	s, chain := newTestServer(t)

	keys := testutil.GenerateSolanaKeys(t, 2)
	chain.SetAccount(keys[0], keys[1], []byte{1, 2, 3, 4})

	status, body := doRequest(t, s, http.MethodGet, "/v1/accounts/"+base58.Encode(keys[0]), nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, base58.Encode(keys[1]), body["owner"])
	assert.EqualValues(t, 4, body["dataLength"])
	assert.Equal(t, false, body["executable"])
}

func TestGetAccount_UpstreamFailureLogged(t *testing.T) {
	s, chain := newTestServer(t)
	chain.GetAccountInfoErr = assert.AnError

	hook := logtest.NewGlobal()
	defer hook.Reset()

	address := base58.Encode(testutil.GenerateSolanaKeys(t, 1)[0])
	status, body := doRequest(t, s, http.MethodGet, "/v1/accounts/"+address, nil)
	require.Equal(t, http.StatusBadGateway, status)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "upstream_unavailable", errBody["code"])
	assert.NotContains(t, errBody["message"], assert.AnError.Error())

	var logged bool
	for _, entry := range hook.AllEntries() {
		if cause, ok := entry.Data[logrus.ErrorKey]; ok && cause == assert.AnError {
			logged = true
		}
	}
	assert.True(t, logged, "underlying failure missing from the log")
}

func TestGetAccount_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	address := base58.Encode(testutil.GenerateSolanaKeys(t, 1)[0])
	status, body := doRequest(t, s, http.MethodGet, "/v1/accounts/"+address, nil)
	require.Equal(t, http.StatusNotFound, status)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "not_found", errBody["code"])
}

func TestGetAccount_InvalidAddress(t *testing.T) {
	s, _ := newTestServer(t)

	status, body := doRequest(t, s, http.MethodGet, "/v1/accounts/0OIl", nil)
	require.Equal(t, http.StatusBadRequest, status)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "invalid_input", errBody["code"])
}

func TestGetBalance(t *testing.T) {
	s, chain := newTestServer(t)

	account := testutil.GenerateSolanaKeys(t, 1)[0]
	chain.SetBalance(account, 2_500_000_000)

	status, body := doRequest(t, s, http.MethodGet, "/v1/balance/"+base58.Encode(account), nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "2500000000", body["balance"])
	assert.EqualValues(t, 9, body["decimals"])
	assert.Equal(t, "sol", body["type"])
}
