package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mr-tron/base58"

	"github.com/soulboard/soulboard-server/pkg/oracle"
	"github.com/soulboard/soulboard-server/pkg/solana"
)

func (s *Server) handleGetDeviceFeed(w http.ResponseWriter, r *http.Request) {
	deviceID, err := parseDeviceID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	feedAddress, _, deriveErr := s.oracleProgram.GetDeviceFeedAddress(&oracle.GetDeviceFeedAddressArgs{DeviceID: deviceID})
	if deriveErr != nil {
		s.writeError(w, errInternal("failed to derive device feed address").withCause(deriveErr))
		return
	}

	feed, fetchErr := s.oracleProgram.GetDeviceFeed(s.client, deviceID)
	if fetchErr == oracle.ErrFeedNotFound {
		s.writeError(w, errNotFound(fmt.Sprintf("device feed for device id %d not found", deviceID)))
		return
	} else if fetchErr != nil {
		s.writeError(w, errUpstream("failed to fetch device feed").withCause(fetchErr))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"deviceId":     deviceID,
		"channelId":    feed.ChannelID,
		"totalViews":   strconv.FormatUint(feed.TotalViews, 10),
		"totalTaps":    strconv.FormatUint(feed.TotalTaps, 10),
		"lastEntryId":  feed.LastEntryID,
		"lastUpdateTs": feed.LastUpdateTs,
		"authority":    base58.Encode(feed.Authority),
		"feedPDA":      base58.Encode(feedAddress),
	})
}

func (s *Server) handleDeviceFeedExists(w http.ResponseWriter, r *http.Request) {
	deviceID, err := parseDeviceID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	feedAddress, _, deriveErr := s.oracleProgram.GetDeviceFeedAddress(&oracle.GetDeviceFeedAddressArgs{DeviceID: deviceID})
	if deriveErr != nil {
		s.writeError(w, errInternal("failed to derive device feed address").withCause(deriveErr))
		return
	}

	info, fetchErr := s.client.GetAccountInfo(feedAddress, s.oracleProgram.Commitment)
	if fetchErr != nil && fetchErr != solana.ErrNoAccountInfo {
		s.writeError(w, errUpstream("failed to fetch device feed account").withCause(deriveErr))
		return
	}

	resp := map[string]interface{}{
		"deviceId": deviceID,
		"exists":   fetchErr == nil,
		"feedPDA":  base58.Encode(feedAddress),
	}
	if fetchErr == nil {
		resp["accountInfo"] = map[string]interface{}{
			"lamports":   strconv.FormatUint(info.Lamports, 10),
			"dataLength": len(info.Data),
			"owner":      base58.Encode(info.Owner),
			"executable": info.Executable,
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func parseDeviceID(r *http.Request) (uint32, error) {
	raw := chi.URLParam(r, "deviceID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidInput("device id must be a positive integer")
	}
	return uint32(id), nil
}
