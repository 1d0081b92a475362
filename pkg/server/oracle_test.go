package server

import (
	"net/http"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulboard/soulboard-server/pkg/oracle"
	"github.com/soulboard/soulboard-server/pkg/testutil"
)

func seedDeviceFeed(t *testing.T, chain *testutil.MockChain, feed *oracle.DeviceFeedAccount, deviceID uint32) {
	address, _, err := testOracleProgram.GetDeviceFeedAddress(&oracle.GetDeviceFeedAddressArgs{DeviceID: deviceID})
	require.NoError(t, err)
	chain.SetAccount(address, oracle.PROGRAM_ID, feed.Marshal())
}

func TestGetDeviceFeed(t *testing.T) {
	s, chain := newTestServer(t)

	authority := testutil.GenerateSolanaKeys(t, 1)[0]
	seedDeviceFeed(t, chain, &oracle.DeviceFeedAccount{
		ChannelID:    2890626,
		LastEntryID:  17,
		TotalViews:   1042,
		TotalTaps:    88,
		LastUpdateTs: 1724900000,
		Authority:    authority,
		Bump:         254,
	}, 12)

	status, body := doRequest(t, s, http.MethodGet, "/v1/oracle/feeds/12", nil)
	require.Equal(t, http.StatusOK, status)

	assert.EqualValues(t, 12, body["deviceId"])
	assert.EqualValues(t, 2890626, body["channelId"])
	assert.Equal(t, "1042", body["totalViews"])
	assert.Equal(t, "88", body["totalTaps"])
	assert.EqualValues(t, 17, body["lastEntryId"])
	assert.Equal(t, base58.Encode(authority), body["authority"])

	address, _, err := testOracleProgram.GetDeviceFeedAddress(&oracle.GetDeviceFeedAddressArgs{DeviceID: 12})
	require.NoError(t, err)
	assert.Equal(t, base58.Encode(address), body["feedPDA"])
}

func TestGetDeviceFeed_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	status, body := doRequest(t, s, http.MethodGet, "/v1/oracle/feeds/99", nil)
	require.Equal(t, http.StatusNotFound, status)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "not_found", errBody["code"])
}

func TestGetDeviceFeed_InvalidID(t *testing.T) {
	s, _ := newTestServer(t)

	status, _ := doRequest(t, s, http.MethodGet, "/v1/oracle/feeds/0", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, s, http.MethodGet, "/v1/oracle/feeds/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeviceFeedExists(t *testing.T) {
	s, chain := newTestServer(t)

	status, body := doRequest(t, s, http.MethodGet, "/v1/oracle/feeds/12/exists", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["exists"])
	assert.NotContains(t, body, "accountInfo")

	seedDeviceFeed(t, chain, &oracle.DeviceFeedAccount{
		ChannelID: 1,
		Authority: testutil.GenerateSolanaKeys(t, 1)[0],
	}, 12)

	status, body = doRequest(t, s, http.MethodGet, "/v1/oracle/feeds/12/exists", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["exists"])

	info := body["accountInfo"].(map[string]interface{})
	assert.Equal(t, base58.Encode(oracle.PROGRAM_ID), info["owner"])
}
