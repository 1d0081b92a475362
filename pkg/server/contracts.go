package server

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mr-tron/base58"

	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
)

// contractCallMethods lists the methods the generic dispatch endpoint can
// assemble. Everything else is answered with unimplemented.
var contractCallMethods = []string{"addBudget"}

type contractCallRequest struct {
	Wallet walletRef         `json:"wallet"`
	Method string            `json:"method"`
	Args   []json.RawMessage `json:"args,omitempty"`
}

func (s *Server) handleContractCall(w http.ResponseWriter, r *http.Request) {
	var req contractCallRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	if req.Method == "" {
		fields["method"] = "is required"
	}
	if err := fields.err(); err != nil {
		s.writeError(w, err)
		return
	}

	switch req.Method {
	case "addBudget":
		s.handleContractAddBudget(w, authority, req)
	default:
		s.writeError(w, errUnimplemented(fmt.Sprintf(
			"method %q not implemented, available methods: %s",
			req.Method, strings.Join(contractCallMethods, ", "),
		)))
	}
}

func (s *Server) handleContractAddBudget(w http.ResponseWriter, authority ed25519.PublicKey, req contractCallRequest) {
	if len(req.Args) < 2 {
		s.writeError(w, errInvalidInput("addBudget requires campaignId and amount arguments"))
		return
	}

	var rawCampaignID int64
	if err := json.Unmarshal(req.Args[0], &rawCampaignID); err != nil {
		s.writeError(w, errInvalidInput("campaignId argument must be an integer"))
		return
	}
	var amount float64
	if err := json.Unmarshal(req.Args[1], &amount); err != nil {
		s.writeError(w, errInvalidInput("amount argument must be a number"))
		return
	}

	fields := fieldErrors{}
	campaignID := fields.checkID("args[0]", rawCampaignID)
	fields.checkAmount("args[1]", amount)
	if err := fields.err(); err != nil {
		s.writeError(w, err)
		return
	}

	campaign, _, err := s.program.GetCampaignAddress(&soulboard.GetCampaignAddressArgs{
		Authority:  authority,
		CampaignID: campaignID,
	})
	if err != nil {
		s.writeError(w, errInternal("failed to derive campaign address").withCause(err))
		return
	}

	encoded, err := s.builder.BuildBase64(
		authority,
		s.program.NewAddBudgetInstruction(
			&soulboard.AddBudgetInstructionAccounts{
				Authority: authority,
				Campaign:  campaign,
			},
			&soulboard.AddBudgetInstructionArgs{
				CampaignID: campaignID,
				Amount:     solToLamports(amount),
			},
		),
	)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"method":      req.Method,
		"programId":   base58.Encode(s.program.ID),
		"transaction": encoded,
		"campaignPDA": base58.Encode(campaign),
		"message":     "Contract method call prepared",
	})
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	address, ok := parseAddress(chi.URLParam(r, "address"))
	if !ok {
		s.writeError(w, errInvalidInput("address must be a base58 encoded public key"))
		return
	}

	info, err := s.client.GetAccountInfo(address, s.program.Commitment)
	if err == solana.ErrNoAccountInfo {
		s.writeError(w, errNotFound("account not found"))
		return
	} else if err != nil {
		s.writeError(w, errUpstream("failed to fetch account").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"address":    chi.URLParam(r, "address"),
		"owner":      base58.Encode(info.Owner),
		"lamports":   strconv.FormatUint(info.Lamports, 10),
		"dataLength": len(info.Data),
		"executable": info.Executable,
	})
}

func (s *Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	address, ok := parseAddress(chi.URLParam(r, "address"))
	if !ok {
		s.writeError(w, errInvalidInput("address must be a base58 encoded public key"))
		return
	}

	balance, err := s.client.GetBalance(address)
	if err != nil {
		s.writeError(w, errUpstream("failed to fetch balance").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"balance":  strconv.FormatUint(balance, 10),
		"decimals": 9,
		"type":     "sol",
	})
}
