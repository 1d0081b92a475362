package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soulboard/soulboard-server/pkg/operator"
	"github.com/soulboard/soulboard-server/pkg/oracle"
	"github.com/soulboard/soulboard-server/pkg/registry"
	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
	"github.com/soulboard/soulboard-server/pkg/testutil"
	"github.com/soulboard/soulboard-server/pkg/txn"
)

var (
	testProgram       = soulboard.NewProgram(soulboard.PROGRAM_ID, solana.CommitmentConfirmed)
	testOracleProgram = oracle.NewProgram(oracle.PROGRAM_ID, solana.CommitmentConfirmed)
)

func newTestServer(t *testing.T) (*Server, *testutil.MockChain) {
	chain := testutil.NewMockChain()
	op := operator.NewKeypair(testutil.GenerateSolanaKeypair(t))

	s := New(
		chain,
		testProgram,
		testOracleProgram,
		txn.NewBuilder(chain),
		registry.NewBootstrapper(chain, testProgram, op),
		"localhost:0",
		10*time.Second,
	)
	return s, chain
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) (int, map[string]interface{}) {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = new(bytes.Buffer)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

func decodeTransaction(t *testing.T, body map[string]interface{}) solana.Transaction {
	encoded, ok := body["transaction"].(string)
	require.True(t, ok, "response has no transaction")
	require.NotEmpty(t, encoded)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	var transaction solana.Transaction
	require.NoError(t, transaction.Unmarshal(raw))
	return transaction
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	status, body := doRequest(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])
}
