package server

import (
	"crypto/ed25519"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mr-tron/base58"

	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
)

type createCampaignRequest struct {
	Wallet              walletRef `json:"wallet"`
	CampaignID          int64     `json:"campaignId"`
	CampaignName        string    `json:"campaignName"`
	CampaignDescription string    `json:"campaignDescription"`
	RunningDays         int64     `json:"runningDays"`
	HoursPerDay         int64     `json:"hoursPerDay"`
	BaseFeePerHour      float64   `json:"baseFeePerHour"`
	InitialBudget       float64   `json:"initialBudget,omitempty"`
}

type createCampaignResponse struct {
	Transaction string                `json:"transaction"`
	CampaignPDA string                `json:"campaignPDA"`
	CampaignID  uint32                `json:"campaignId"`
	Message     string                `json:"message"`
	Details     createCampaignDetails `json:"details"`
}

type createCampaignDetails struct {
	RunningDays            uint32  `json:"runningDays"`
	HoursPerDay            uint32  `json:"hoursPerDay"`
	BaseFeePerHour         float64 `json:"baseFeePerHour"`
	BaseFeePerHourLamports string  `json:"baseFeePerHourLamports"`
	InitialBudget          float64 `json:"initialBudget"`
	InitialBudgetLamports  string  `json:"initialBudgetLamports"`
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	campaignID := fields.checkID("campaignId", req.CampaignID)
	fields.checkString("campaignName", req.CampaignName, 1, 100)
	fields.checkString("campaignDescription", req.CampaignDescription, 1, 500)
	runningDays := fields.checkRange("runningDays", req.RunningDays, 1, 365)
	hoursPerDay := fields.checkRange("hoursPerDay", req.HoursPerDay, 1, 24)
	fields.checkAmount("baseFeePerHour", req.BaseFeePerHour)
	if req.InitialBudget != 0 {
		fields.checkAmount("initialBudget", req.InitialBudget)
	}
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

	baseFeeLamports := solToLamports(req.BaseFeePerHour)
	initialBudgetLamports := solToLamports(req.InitialBudget)

	instructions := []solana.Instruction{
		s.program.NewCreateCampaignInstruction(
			&soulboard.CreateCampaignInstructionAccounts{
				Authority: authority,
				Campaign:  campaign,
			},
			&soulboard.CreateCampaignInstructionArgs{
				CampaignID:          campaignID,
				CampaignName:        req.CampaignName,
				CampaignDescription: req.CampaignDescription,
				RunningDays:         runningDays,
				HoursPerDay:         hoursPerDay,
				BaseFeePerHour:      baseFeeLamports,
			},
		),
	}

	message := fmt.Sprintf("Campaign %q creation transaction prepared", req.CampaignName)
	if req.InitialBudget > 0 {
		instructions = append(instructions, s.program.NewAddBudgetInstruction(
			&soulboard.AddBudgetInstructionAccounts{
				Authority: authority,
				Campaign:  campaign,
			},
			&soulboard.AddBudgetInstructionArgs{
				CampaignID: campaignID,
				Amount:     initialBudgetLamports,
			},
		))
		message = fmt.Sprintf("%s with initial budget of %g SOL", message, req.InitialBudget)
	}

	encoded, err := s.builder.BuildBase64(authority, instructions...)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, createCampaignResponse{
		Transaction: encoded,
		CampaignPDA: base58.Encode(campaign),
		CampaignID:  campaignID,
		Message:     message,
		Details: createCampaignDetails{
			RunningDays:            runningDays,
			HoursPerDay:            hoursPerDay,
			BaseFeePerHour:         req.BaseFeePerHour,
			BaseFeePerHourLamports: strconv.FormatUint(baseFeeLamports, 10),
			InitialBudget:          req.InitialBudget,
			InitialBudgetLamports:  strconv.FormatUint(initialBudgetLamports, 10),
		},
	})
}

type addBudgetRequest struct {
	Wallet     walletRef `json:"wallet"`
	CampaignID int64     `json:"campaignId"`
	Amount     float64   `json:"amount"`
}

func (s *Server) handleAddBudget(w http.ResponseWriter, r *http.Request) {
	var req addBudgetRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	campaignID := fields.checkID("campaignId", req.CampaignID)
	fields.checkAmount("amount", req.Amount)
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

	if _, err := s.program.GetCampaign(s.client, campaign); err == soulboard.ErrAccountNotFound {
		s.writeError(w, errNotFound(fmt.Sprintf("campaign with id %d not found", campaignID)))
		return
	} else if err != nil {
		s.writeError(w, errUpstream("failed to fetch campaign account").withCause(err))
		return
	}

	amountLamports := solToLamports(req.Amount)

	encoded, err := s.builder.BuildBase64(
		authority,
		s.program.NewAddBudgetInstruction(
			&soulboard.AddBudgetInstructionAccounts{
				Authority: authority,
				Campaign:  campaign,
			},
			&soulboard.AddBudgetInstructionArgs{
				CampaignID: campaignID,
				Amount:     amountLamports,
			},
		),
	)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"transaction": encoded,
		"campaignPDA": base58.Encode(campaign),
		"campaignId":  campaignID,
		"message":     fmt.Sprintf("Added %g SOL budget to campaign %d", req.Amount, campaignID),
		"details": map[string]interface{}{
			"amount":         req.Amount,
			"amountLamports": strconv.FormatUint(amountLamports, 10),
		},
	})
}

type locationRequest struct {
	Wallet     walletRef `json:"wallet"`
	CampaignID int64     `json:"campaignId"`
	Location   string    `json:"location"`
	DeviceID   int64     `json:"deviceId"`
}

func (s *Server) handleAddLocation(w http.ResponseWriter, r *http.Request) {
	s.handleLocationChange(w, r, true)
}

func (s *Server) handleRemoveLocation(w http.ResponseWriter, r *http.Request) {
	s.handleLocationChange(w, r, false)
}

// handleLocationChange covers both add and remove, which share everything
// except the instruction.
func (s *Server) handleLocationChange(w http.ResponseWriter, r *http.Request, add bool) {
	var req locationRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	location, _ := fields.checkAddress("location", req.Location)
	campaignID := fields.checkID("campaignId", req.CampaignID)
	deviceID := fields.checkID("deviceId", req.DeviceID)
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
	adProvider, _, err := s.program.GetAdProviderAddress(&soulboard.GetAdProviderAddressArgs{Authority: location})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider address").withCause(err))
		return
	}
	providerMetadata, _, err := s.program.GetProviderMetadataAddress(&soulboard.GetProviderMetadataAddressArgs{Authority: location})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider metadata address").withCause(err))
		return
	}

	var ins solana.Instruction
	var message string
	if add {
		ins = s.program.NewAddLocationInstruction(
			&soulboard.AddLocationInstructionAccounts{
				Authority:        authority,
				Campaign:         campaign,
				AdProvider:       adProvider,
				ProviderMetadata: providerMetadata,
			},
			&soulboard.AddLocationInstructionArgs{
				CampaignID: campaignID,
				Location:   location,
				DeviceID:   deviceID,
			},
		)
		message = "Add location transaction created successfully"
	} else {
		ins = s.program.NewRemoveLocationInstruction(
			&soulboard.RemoveLocationInstructionAccounts{
				Authority:        authority,
				Campaign:         campaign,
				AdProvider:       adProvider,
				ProviderMetadata: providerMetadata,
			},
			&soulboard.RemoveLocationInstructionArgs{
				CampaignID: campaignID,
				Location:   location,
				DeviceID:   deviceID,
			},
		)
		message = "Remove location transaction created successfully"
	}

	encoded, err := s.builder.BuildBase64(authority, ins)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"transaction": encoded,
		"message":     message,
		"campaignId":  campaignID,
		"deviceId":    deviceID,
		"campaignPDA": base58.Encode(campaign),
	})
}

type completeCampaignRequest struct {
	Wallet     walletRef `json:"wallet"`
	CampaignID int64     `json:"campaignId"`
}

func (s *Server) handleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	var req completeCampaignRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	campaignID := fields.checkID("campaignId", req.CampaignID)
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
	registryAddress, _, err := s.program.GetProviderRegistryAddress()
	if err != nil {
		s.writeError(w, errInternal("failed to derive registry address").withCause(err))
		return
	}

	encoded, err := s.builder.BuildBase64(
		authority,
		s.program.NewCompleteCampaignInstruction(
			&soulboard.CompleteCampaignInstructionAccounts{
				Authority:        authority,
				Campaign:         campaign,
				ProviderRegistry: registryAddress,
			},
			&soulboard.CompleteCampaignInstructionArgs{
				CampaignID: campaignID,
			},
		),
	)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"transaction": encoded,
		"message":     "Complete campaign transaction created successfully",
		"campaignId":  campaignID,
		"campaignPDA": base58.Encode(campaign),
	})
}

type campaignSummary struct {
	PublicKey    string `json:"publicKey"`
	Authority    string `json:"authority"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Budget       string `json:"budget"`
	Remaining    string `json:"remaining"`
	Spent        string `json:"spent"`
	IsActive     bool   `json:"isActive"`
	IsPaused     bool   `json:"isPaused"`
	DevicesCount int    `json:"devicesCount"`
}

func (s *Server) handleGetUserCampaigns(w http.ResponseWriter, r *http.Request) {
	authority, ok := parseAddress(r.URL.Query().Get("authority"))
	if !ok {
		s.writeError(w, errInvalidInput("authority must be a base58 encoded public key"))
		return
	}

	campaigns, err := s.program.GetCampaignsByAuthority(s.client, authority)
	if err != nil {
		s.writeError(w, errUpstream("failed to scan campaign accounts").withCause(err))
		return
	}

	summaries := make([]campaignSummary, 0, len(campaigns))
	for _, campaign := range campaigns {
		address, _, err := s.program.GetCampaignAddress(&soulboard.GetCampaignAddressArgs{
			Authority:  campaign.Authority,
			CampaignID: campaign.CampaignID,
		})
		if err != nil {
			s.writeError(w, errInternal("failed to derive campaign address").withCause(err))
			return
		}

		summaries = append(summaries, campaignSummary{
			PublicKey:    base58.Encode(address),
			Authority:    base58.Encode(campaign.Authority),
			Name:         campaign.CampaignName,
			Description:  campaign.CampaignDescription,
			Budget:       strconv.FormatUint(campaign.CampaignBudget, 10),
			Remaining:    strconv.FormatUint(remainingBudget(campaign), 10),
			Spent:        strconv.FormatUint(campaign.TotalDistributed, 10),
			IsActive:     campaign.CampaignStatus == soulboard.CampaignStatusActive,
			IsPaused:     campaign.CampaignStatus == soulboard.CampaignStatusPaused,
			DevicesCount: len(campaign.CampaignLocations),
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"userAddress":    r.URL.Query().Get("authority"),
		"totalCampaigns": len(summaries),
		"campaigns":      summaries,
	})
}

func (s *Server) handleGetCampaignDetails(w http.ResponseWriter, r *http.Request) {
	campaignID, err := parseCampaignID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	campaigns, scanErr := s.program.GetAllCampaigns(s.client)
	if scanErr != nil {
		s.writeError(w, errUpstream("failed to scan campaign accounts").withCause(scanErr))
		return
	}

	var campaign *soulboard.CampaignAccount
	for _, c := range campaigns {
		if c.CampaignID == campaignID {
			campaign = c
			break
		}
	}
	if campaign == nil {
		s.writeError(w, errNotFound("campaign not found"))
		return
	}

	address, _, deriveErr := s.program.GetCampaignAddress(&soulboard.GetCampaignAddressArgs{
		Authority:  campaign.Authority,
		CampaignID: campaign.CampaignID,
	})
	if deriveErr != nil {
		s.writeError(w, errInternal("failed to derive campaign address").withCause(deriveErr))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaignId":     campaign.CampaignID,
		"campaignPDA":    base58.Encode(address),
		"authority":      base58.Encode(campaign.Authority),
		"name":           campaign.CampaignName,
		"description":    campaign.CampaignDescription,
		"budget":         strconv.FormatUint(campaign.CampaignBudget, 10),
		"remaining":      strconv.FormatUint(remainingBudget(campaign), 10),
		"spent":          strconv.FormatUint(campaign.TotalDistributed, 10),
		"runningDays":    campaign.RunningDays,
		"hoursPerDay":    campaign.HoursPerDay,
		"baseFeePerHour": strconv.FormatUint(campaign.BaseFeePerHour, 10),
		"isActive":       campaign.CampaignStatus == soulboard.CampaignStatusActive,
		"isPaused":       campaign.CampaignStatus == soulboard.CampaignStatusPaused,
		"locations":      encodeKeys(campaign.CampaignLocations),
		"providers":      encodeKeys(campaign.CampaignProviders),
	})
}

func (s *Server) handleGetCampaignStats(w http.ResponseWriter, r *http.Request) {
	campaignID, err := parseCampaignID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	authority, ok := parseAddress(r.URL.Query().Get("authority"))
	if !ok {
		s.writeError(w, errInvalidInput("authority must be a base58 encoded public key"))
		return
	}

	campaign, fetchErr := s.program.GetCampaignByID(s.client, authority, campaignID)
	if fetchErr == soulboard.ErrAccountNotFound {
		s.writeError(w, errNotFound("campaign not found"))
		return
	} else if fetchErr != nil {
		s.writeError(w, errUpstream("failed to fetch campaign account").withCause(fetchErr))
		return
	}

	address, _, deriveErr := s.program.GetCampaignAddress(&soulboard.GetCampaignAddressArgs{
		Authority:  authority,
		CampaignID: campaignID,
	})
	if deriveErr != nil {
		s.writeError(w, errInternal("failed to derive campaign address").withCause(deriveErr))
		return
	}

	budget := campaign.CampaignBudget
	spent := campaign.TotalDistributed
	remaining := remainingBudget(campaign)

	var spentPct, remainingPct float64
	if budget > 0 {
		spentPct = float64(spent) / float64(budget) * 100
		remainingPct = float64(remaining) / float64(budget) * 100
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaignId":  campaignID,
		"campaignPDA": base58.Encode(address),
		"name":        campaign.CampaignName,
		"budget": map[string]interface{}{
			"lamports": strconv.FormatUint(budget, 10),
			"sol":      lamportsToSol(budget),
		},
		"spent": map[string]interface{}{
			"lamports":   strconv.FormatUint(spent, 10),
			"sol":        lamportsToSol(spent),
			"percentage": spentPct,
		},
		"remaining": map[string]interface{}{
			"lamports":   strconv.FormatUint(remaining, 10),
			"sol":        lamportsToSol(remaining),
			"percentage": remainingPct,
		},
		"devices": map[string]interface{}{
			"total": len(campaign.CampaignLocations),
			"list":  encodeKeys(campaign.CampaignLocations),
		},
		"status": map[string]interface{}{
			"isActive":    campaign.CampaignStatus == soulboard.CampaignStatusActive,
			"isPaused":    campaign.CampaignStatus == soulboard.CampaignStatusPaused,
			"isCompleted": campaign.CampaignStatus == soulboard.CampaignStatusCompleted,
		},
		"duration": map[string]interface{}{
			"runningDays": campaign.RunningDays,
			"hoursPerDay": campaign.HoursPerDay,
			"totalHours":  campaign.RunningDays * campaign.HoursPerDay,
		},
	})
}

func parseCampaignID(r *http.Request) (uint32, error) {
	raw := chi.URLParam(r, "campaignID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidInput("campaign id must be a positive integer")
	}
	return uint32(id), nil
}

func remainingBudget(campaign *soulboard.CampaignAccount) uint64 {
	if campaign.TotalDistributed > campaign.CampaignBudget {
		return 0
	}
	return campaign.CampaignBudget - campaign.TotalDistributed
}

func encodeKeys(keys []ed25519.PublicKey) []string {
	encoded := make([]string, len(keys))
	for i, k := range keys {
		encoded[i] = base58.Encode(k)
	}
	return encoded
}
