package server

import (
	"crypto/ed25519"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mr-tron/base58"

	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
)

type registerProviderRequest struct {
	Wallet       walletRef `json:"wallet"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	ContactEmail string    `json:"contactEmail"`
}

func (s *Server) handleRegisterProvider(w http.ResponseWriter, r *http.Request) {
	var req registerProviderRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	fields.checkString("name", req.Name, 1, 100)
	fields.checkString("location", req.Location, 1, 200)
	fields.checkEmail("contactEmail", req.ContactEmail)
	if err := fields.err(); err != nil {
		s.writeError(w, err)
		return
	}

	adProvider, _, err := s.program.GetAdProviderAddress(&soulboard.GetAdProviderAddressArgs{Authority: authority})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider address").withCause(err))
		return
	}
	providerMetadata, _, err := s.program.GetProviderMetadataAddress(&soulboard.GetProviderMetadataAddressArgs{Authority: authority})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider metadata address").withCause(err))
		return
	}
	registryAddress, _, err := s.program.GetProviderRegistryAddress()
	if err != nil {
		s.writeError(w, errInternal("failed to derive registry address").withCause(err))
		return
	}

	encoded, err := s.builder.BuildBase64(
		authority,
		s.program.NewRegisterProviderInstruction(
			&soulboard.RegisterProviderInstructionAccounts{
				Authority:        authority,
				AdProvider:       adProvider,
				ProviderRegistry: registryAddress,
				ProviderMetadata: providerMetadata,
			},
			&soulboard.RegisterProviderInstructionArgs{
				Name:         req.Name,
				Location:     req.Location,
				ContactEmail: req.ContactEmail,
			},
		),
	)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"transaction":         encoded,
		"message":             "Provider registration transaction created successfully",
		"adProviderPDA":       base58.Encode(adProvider),
		"providerMetadataPDA": base58.Encode(providerMetadata),
	})
}

type updateProviderRequest struct {
	Wallet       walletRef `json:"wallet"`
	Name         *string   `json:"name,omitempty"`
	Location     *string   `json:"location,omitempty"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	IsActive     *bool     `json:"isActive,omitempty"`
}

func (s *Server) handleUpdateProvider(w http.ResponseWriter, r *http.Request) {
	var req updateProviderRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	if req.Name != nil {
		fields.checkString("name", *req.Name, 1, 100)
	}
	if req.Location != nil {
		fields.checkString("location", *req.Location, 1, 200)
	}
	if req.ContactEmail != nil {
		fields.checkEmail("contactEmail", *req.ContactEmail)
	}
	if err := fields.err(); err != nil {
		s.writeError(w, err)
		return
	}

	adProvider, _, err := s.program.GetAdProviderAddress(&soulboard.GetAdProviderAddressArgs{Authority: authority})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider address").withCause(err))
		return
	}
	providerMetadata, _, err := s.program.GetProviderMetadataAddress(&soulboard.GetProviderMetadataAddressArgs{Authority: authority})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider metadata address").withCause(err))
		return
	}

	encoded, err := s.builder.BuildBase64(
		authority,
		s.program.NewUpdateProviderInstruction(
			&soulboard.UpdateProviderInstructionAccounts{
				Authority:        authority,
				AdProvider:       adProvider,
				ProviderMetadata: providerMetadata,
			},
			&soulboard.UpdateProviderInstructionArgs{
				Name:         req.Name,
				Location:     req.Location,
				ContactEmail: req.ContactEmail,
				IsActive:     req.IsActive,
			},
		),
	)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"transaction": encoded,
		"message":     "Provider update transaction created successfully",
	})
}

type addDeviceRequest struct {
	Wallet   walletRef `json:"wallet"`
	DeviceID int64     `json:"deviceId"`
}

func (s *Server) handleAddDevice(w http.ResponseWriter, r *http.Request) {
	var req addDeviceRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	fields := fieldErrors{}
	authority, _ := fields.checkWallet(req.Wallet)
	deviceID := fields.checkID("deviceId", req.DeviceID)
	if err := fields.err(); err != nil {
		s.writeError(w, err)
		return
	}

	adProvider, _, err := s.program.GetAdProviderAddress(&soulboard.GetAdProviderAddressArgs{Authority: authority})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider address").withCause(err))
		return
	}
	providerMetadata, _, err := s.program.GetProviderMetadataAddress(&soulboard.GetProviderMetadataAddressArgs{Authority: authority})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider metadata address").withCause(err))
		return
	}

	encoded, err := s.builder.BuildBase64(
		authority,
		s.program.NewGetDeviceInstruction(
			&soulboard.GetDeviceInstructionAccounts{
				Authority:        authority,
				AdProvider:       adProvider,
				ProviderMetadata: providerMetadata,
			},
			&soulboard.GetDeviceInstructionArgs{
				DeviceID: deviceID,
			},
		),
	)
	if err != nil {
		s.writeError(w, errUpstream("failed to assemble transaction").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"transaction": encoded,
		"message":     "Add device transaction created successfully",
		"deviceId":    deviceID,
	})
}

// handleGetAllProviders bootstraps the registry when missing, so a fresh
// chain answers with an empty provider list instead of an error.
func (s *Server) handleGetAllProviders(w http.ResponseWriter, r *http.Request) {
	if _, err := s.bootstrapper.EnsureInitialized(); err != nil {
		s.writeError(w, errUpstream("failed to initialize provider registry").withCause(err))
		return
	}

	registryAccount, err := s.program.GetProviderRegistry(s.client)
	if err == soulboard.ErrAccountNotFound {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"providers":      []string{},
			"totalProviders": 0,
		})
		return
	} else if err != nil {
		s.writeError(w, errUpstream("failed to fetch provider registry").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"providers":      encodeKeys(registryAccount.Providers),
		"totalProviders": registryAccount.TotalProviders,
	})
}

func (s *Server) handleGetRegistryInfo(w http.ResponseWriter, r *http.Request) {
	if _, err := s.bootstrapper.EnsureInitialized(); err != nil {
		s.writeError(w, errUpstream("failed to initialize provider registry").withCause(err))
		return
	}

	registryAccount, err := s.program.GetProviderRegistry(s.client)
	if err == soulboard.ErrAccountNotFound {
		s.writeError(w, errNotFound("provider registry not found"))
		return
	} else if err != nil {
		s.writeError(w, errUpstream("failed to fetch provider registry").withCause(err))
		return
	}

	registryAddress, _, deriveErr := s.program.GetProviderRegistryAddress()
	if deriveErr != nil {
		s.writeError(w, errInternal("failed to derive registry address").withCause(deriveErr))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"deployer":       base58.Encode(registryAccount.Deployer),
		"totalProviders": registryAccount.TotalProviders,
		"providers":      encodeKeys(registryAccount.Providers),
		"keepers":        encodeKeys(registryAccount.Keepers),
		"registryPDA":    base58.Encode(registryAddress),
	})
}

func (s *Server) handleIsProviderRegistered(w http.ResponseWriter, r *http.Request) {
	provider, ok := parseAddress(chi.URLParam(r, "address"))
	if !ok {
		s.writeError(w, errInvalidInput("address must be a base58 encoded public key"))
		return
	}

	adProvider, _, err := s.program.GetAdProviderAddress(&soulboard.GetAdProviderAddressArgs{Authority: provider})
	if err != nil {
		s.writeError(w, errInternal("failed to derive provider address").withCause(err))
		return
	}

	_, err = s.client.GetAccountInfo(adProvider, s.program.Commitment)
	if err != nil && err != solana.ErrNoAccountInfo {
		s.writeError(w, errUpstream("failed to fetch provider account").withCause(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"isRegistered": err == nil,
		"providerPDA":  base58.Encode(adProvider),
	})
}

type deviceInfo struct {
	DeviceID    uint32 `json:"deviceId"`
	DeviceState string `json:"deviceState"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
	IsOrdered   bool   `json:"isOrdered"`
	IsPaused    bool   `json:"isPaused"`
	Location    string `json:"location"`
}

func (s *Server) handleGetProviderDetails(w http.ResponseWriter, r *http.Request) {
	provider, ok := parseAddress(chi.URLParam(r, "address"))
	if !ok {
		s.writeError(w, errInvalidInput("address must be a base58 encoded public key"))
		return
	}

	adProvider, providerMetadata, err := s.fetchProvider(provider)
	if err != nil {
		s.writeError(w, err)
		return
	}

	devices := make([]map[string]interface{}, 0, len(adProvider.Devices))
	for _, device := range adProvider.Devices {
		devices = append(devices, map[string]interface{}{
			"deviceId":    device.DeviceID,
			"deviceState": device.DeviceState.String(),
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"adProvider": map[string]interface{}{
			"authority":       base58.Encode(adProvider.Authority),
			"name":            adProvider.Name,
			"location":        adProvider.Location,
			"contactEmail":    adProvider.ContactEmail,
			"rating":          adProvider.Rating,
			"totalCampaigns":  adProvider.TotalCampaigns,
			"isActive":        adProvider.IsActive,
			"totalEarnings":   strconv.FormatUint(adProvider.TotalEarnings, 10),
			"pendingPayments": strconv.FormatUint(adProvider.PendingPayments, 10),
			"devices":         devices,
		},
		"metadata": map[string]interface{}{
			"authority":        base58.Encode(providerMetadata.Authority),
			"providerPda":      base58.Encode(providerMetadata.ProviderPda),
			"name":             providerMetadata.Name,
			"location":         providerMetadata.Location,
			"deviceCount":      providerMetadata.DeviceCount,
			"availableDevices": providerMetadata.AvailableDevices,
			"rating":           providerMetadata.Rating,
			"isActive":         providerMetadata.IsActive,
		},
	})
}

func (s *Server) handleGetProviderDevices(w http.ResponseWriter, r *http.Request) {
	provider, ok := parseAddress(chi.URLParam(r, "address"))
	if !ok {
		s.writeError(w, errInvalidInput("address must be a base58 encoded public key"))
		return
	}

	adProvider, _, err := s.fetchProvider(provider)
	if err != nil {
		s.writeError(w, err)
		return
	}

	devices := make([]deviceInfo, 0, len(adProvider.Devices))
	byState := map[string][]deviceInfo{
		"available": {},
		"booked":    {},
		"ordered":   {},
		"paused":    {},
	}
	for _, device := range adProvider.Devices {
		state := device.DeviceState.String()
		info := deviceInfo{
			DeviceID:    device.DeviceID,
			DeviceState: state,
			IsAvailable: device.DeviceState == soulboard.DeviceStateAvailable,
			IsBooked:    device.DeviceState == soulboard.DeviceStateBooked,
			IsOrdered:   device.DeviceState == soulboard.DeviceStateOrdered,
			IsPaused:    device.DeviceState == soulboard.DeviceStatePaused,
			Location:    adProvider.Location,
		}
		devices = append(devices, info)
		byState[state] = append(byState[state], info)
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"providerAddress": chi.URLParam(r, "address"),
		"summary": map[string]interface{}{
			"totalDevices":     len(devices),
			"availableDevices": len(byState["available"]),
			"bookedDevices":    len(byState["booked"]),
			"orderedDevices":   len(byState["ordered"]),
			"pausedDevices":    len(byState["paused"]),
		},
		"devices":        devices,
		"devicesByState": byState,
		"providerInfo": map[string]interface{}{
			"name":           adProvider.Name,
			"location":       adProvider.Location,
			"isActive":       adProvider.IsActive,
			"rating":         adProvider.Rating,
			"totalEarnings":  strconv.FormatUint(adProvider.TotalEarnings, 10),
			"totalCampaigns": adProvider.TotalCampaigns,
		},
	})
}

type availableDevice struct {
	DeviceID        uint32 `json:"deviceId"`
	ProviderAddress string `json:"providerAddress"`
	ProviderName    string `json:"providerName"`
	Location        string `json:"location"`
	ProviderRating  uint8  `json:"providerRating"`
	ContactEmail    string `json:"contactEmail"`
	IsActive        bool   `json:"isActive"`
}

// handleGetAvailableDevices aggregates available devices across every
// registered provider. A missing registry is answered with an empty result.
func (s *Server) handleGetAvailableDevices(w http.ResponseWriter, r *http.Request) {
	registryAccount, err := s.program.GetProviderRegistry(s.client)
	if err == soulboard.ErrAccountNotFound {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"totalAvailableDevices": 0,
			"availableDevices":      []availableDevice{},
			"summary": map[string]interface{}{
				"totalProviders":               0,
				"providersWithAvailableDevices": 0,
			},
			"message": "Provider registry not initialized yet",
		})
		return
	} else if err != nil {
		s.writeError(w, errUpstream("failed to fetch provider registry").withCause(err))
		return
	}

	available := make([]availableDevice, 0)
	providersWithDevices := make(map[string]struct{})
	for _, provider := range registryAccount.Providers {
		adProvider, fetchErr := s.program.GetAdProviderByAuthority(s.client, provider)
		if fetchErr != nil {
			// A registered provider whose account fails to resolve is
			// skipped rather than failing the whole aggregation.
			continue
		}

		for _, device := range adProvider.Devices {
			if device.DeviceState != soulboard.DeviceStateAvailable {
				continue
			}

			encoded := base58.Encode(provider)
			available = append(available, availableDevice{
				DeviceID:        device.DeviceID,
				ProviderAddress: encoded,
				ProviderName:    adProvider.Name,
				Location:        adProvider.Location,
				ProviderRating:  adProvider.Rating,
				ContactEmail:    adProvider.ContactEmail,
				IsActive:        adProvider.IsActive,
			})
			providersWithDevices[encoded] = struct{}{}
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalAvailableDevices": len(available),
		"availableDevices":      available,
		"summary": map[string]interface{}{
			"totalProviders":               len(registryAccount.Providers),
			"providersWithAvailableDevices": len(providersWithDevices),
		},
	})
}

func (s *Server) handleInitializeRegistry(w http.ResponseWriter, r *http.Request) {
	created, err := s.bootstrapper.EnsureInitialized()
	if err != nil {
		s.writeError(w, errUpstream("failed to initialize provider registry").withCause(err))
		return
	}

	registryAddress, deriveErr := s.registryPDA()
	if deriveErr != nil {
		s.writeError(w, errInternal("failed to derive registry address").withCause(deriveErr))
		return
	}

	message := "Registry already initialized"
	if created {
		message = "Registry initialization completed successfully"
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     message,
		"created":     created,
		"registryPDA": registryAddress,
	})
}

func (s *Server) registryPDA() (string, error) {
	address, _, err := s.program.GetProviderRegistryAddress()
	if err != nil {
		return "", err
	}
	return base58.Encode(address), nil
}

// fetchProvider resolves both PDAs for a provider authority, mapping an
// absent account to not_found.
func (s *Server) fetchProvider(provider ed25519.PublicKey) (*soulboard.AdProviderAccount, *soulboard.ProviderMetadataAccount, error) {
	adProvider, err := s.program.GetAdProviderByAuthority(s.client, provider)
	if err == soulboard.ErrAccountNotFound {
		return nil, nil, errNotFound("provider not found")
	} else if err != nil {
		return nil, nil, errUpstream("failed to fetch provider account").withCause(err)
	}

	providerMetadata, err := s.program.GetProviderMetadataByAuthority(s.client, provider)
	if err == soulboard.ErrAccountNotFound {
		return nil, nil, errNotFound("provider not found")
	} else if err != nil {
		return nil, nil, errUpstream("failed to fetch provider metadata account").withCause(err)
	}

	return adProvider, providerMetadata, nil
}
