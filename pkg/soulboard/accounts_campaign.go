package soulboard

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

var CampaignAccountDiscriminator = accountDiscriminator("Campaign")

type CampaignAccount struct {
	Authority           ed25519.PublicKey
	CampaignID          uint32
	CampaignName        string
	CampaignDescription string
	CampaignBudget      uint64
	CampaignStatus      CampaignStatus
	CampaignProviders   []ed25519.PublicKey
	CampaignLocations   []ed25519.PublicKey
	RunningDays         uint32
	HoursPerDay         uint32
	BaseFeePerHour      uint64
	PlatformFee         uint64
	TotalDistributed    uint64
	CampaignPerformance []ProviderPerformance
}

func (obj *CampaignAccount) Marshal() []byte {
	buf := new(bytes.Buffer)

	putDiscriminator(buf, CampaignAccountDiscriminator)
	putKey(buf, obj.Authority)
	putUint32(buf, obj.CampaignID)
	putString(buf, obj.CampaignName)
	putString(buf, obj.CampaignDescription)
	putUint64(buf, obj.CampaignBudget)
	putUint8(buf, uint8(obj.CampaignStatus))
	putUint32(buf, uint32(len(obj.CampaignProviders)))
	for _, k := range obj.CampaignProviders {
		putKey(buf, k)
	}
	putUint32(buf, uint32(len(obj.CampaignLocations)))
	for _, k := range obj.CampaignLocations {
		putKey(buf, k)
	}
	putUint32(buf, obj.RunningDays)
	putUint32(buf, obj.HoursPerDay)
	putUint64(buf, obj.BaseFeePerHour)
	putUint64(buf, obj.PlatformFee)
	putUint64(buf, obj.TotalDistributed)
	putUint32(buf, uint32(len(obj.CampaignPerformance)))
	for _, p := range obj.CampaignPerformance {
		putProviderPerformance(buf, p)
	}

	return buf.Bytes()
}

func (obj *CampaignAccount) Unmarshal(data []byte) error {
	d := newDecoder(data)

	d.readDiscriminator(CampaignAccountDiscriminator)
	obj.Authority = d.readKey()
	obj.CampaignID = d.readUint32()
	obj.CampaignName = d.readString()
	obj.CampaignDescription = d.readString()
	obj.CampaignBudget = d.readUint64()
	obj.CampaignStatus = CampaignStatus(d.readUint8())
	obj.CampaignProviders = d.readKeyVec()
	obj.CampaignLocations = d.readKeyVec()
	obj.RunningDays = d.readUint32()
	obj.HoursPerDay = d.readUint32()
	obj.BaseFeePerHour = d.readUint64()
	obj.PlatformFee = d.readUint64()
	obj.TotalDistributed = d.readUint64()

	performanceCount := d.readUint32()
	obj.CampaignPerformance = make([]ProviderPerformance, 0, performanceCount)
	for i := uint32(0); i < performanceCount; i++ {
		if d.err != nil {
			break
		}
		obj.CampaignPerformance = append(obj.CampaignPerformance, d.readProviderPerformance())
	}

	return d.err
}

func (obj *CampaignAccount) String() string {
	return fmt.Sprintf(
		"Campaign{authority=%s,campaign_id=%d,name=%s,budget=%d,status=%s,providers=%d,locations=%d,running_days=%d,hours_per_day=%d,base_fee_per_hour=%d,platform_fee=%d,total_distributed=%d}",
		base58.Encode(obj.Authority),
		obj.CampaignID,
		obj.CampaignName,
		obj.CampaignBudget,
		obj.CampaignStatus,
		len(obj.CampaignProviders),
		len(obj.CampaignLocations),
		obj.RunningDays,
		obj.HoursPerDay,
		obj.BaseFeePerHour,
		obj.PlatformFee,
		obj.TotalDistributed,
	)
}
