package soulboard

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

type CampaignStatus uint8

const (
	CampaignStatusActive CampaignStatus = iota
	CampaignStatusPaused
	CampaignStatusCompleted
)

func (s CampaignStatus) String() string {
	switch s {
	case CampaignStatusActive:
		return "active"
	case CampaignStatusPaused:
		return "paused"
	case CampaignStatusCompleted:
		return "completed"
	}
	return "unknown"
}

type DeviceState uint8

const (
	DeviceStateAvailable DeviceState = iota
	DeviceStateBooked
	DeviceStateOrdered
	DeviceStatePaused
)

func (s DeviceState) String() string {
	switch s {
	case DeviceStateAvailable:
		return "available"
	case DeviceStateBooked:
		return "booked"
	case DeviceStateOrdered:
		return "ordered"
	case DeviceStatePaused:
		return "paused"
	}
	return "unknown"
}

// Device is a single billboard display registered under a provider.
type Device struct {
	DeviceID    uint32
	DeviceState DeviceState
}

func putDevice(buf *bytes.Buffer, v Device) {
	putUint32(buf, v.DeviceID)
	putUint8(buf, uint8(v.DeviceState))
}

func (d *decoder) readDevice() Device {
	return Device{
		DeviceID:    d.readUint32(),
		DeviceState: DeviceState(d.readUint8()),
	}
}

// ProviderPerformance tracks a single provider device's engagement counters
// and earnings within a campaign.
type ProviderPerformance struct {
	Provider             ed25519.PublicKey
	DeviceID             uint32
	TotalViews           uint64
	TotalTaps            uint64
	CalculatedEarnings   uint64
	BaseFeeEarned        uint64
	PerformanceFeeEarned uint64
}

func putProviderPerformance(buf *bytes.Buffer, v ProviderPerformance) {
	putKey(buf, v.Provider)
	putUint32(buf, v.DeviceID)
	putUint64(buf, v.TotalViews)
	putUint64(buf, v.TotalTaps)
	putUint64(buf, v.CalculatedEarnings)
	putUint64(buf, v.BaseFeeEarned)
	putUint64(buf, v.PerformanceFeeEarned)
}

func (d *decoder) readProviderPerformance() ProviderPerformance {
	return ProviderPerformance{
		Provider:             d.readKey(),
		DeviceID:             d.readUint32(),
		TotalViews:           d.readUint64(),
		TotalTaps:            d.readUint64(),
		CalculatedEarnings:   d.readUint64(),
		BaseFeeEarned:        d.readUint64(),
		PerformanceFeeEarned: d.readUint64(),
	}
}

func (p ProviderPerformance) String() string {
	return fmt.Sprintf(
		"ProviderPerformance{provider=%s,device_id=%d,total_views=%d,total_taps=%d,calculated_earnings=%d,base_fee_earned=%d,performance_fee_earned=%d}",
		base58.Encode(p.Provider),
		p.DeviceID,
		p.TotalViews,
		p.TotalTaps,
		p.CalculatedEarnings,
		p.BaseFeeEarned,
		p.PerformanceFeeEarned,
	)
}
