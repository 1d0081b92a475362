package soulboard

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

var AdProviderAccountDiscriminator = accountDiscriminator("AdProvider")

type AdProviderAccount struct {
	Authority      ed25519.PublicKey
	Devices        []Device
	Name           string
	Location       string
	ContactEmail   string
	Rating         uint8
	TotalCampaigns uint32
	IsActive       bool
	TotalEarnings  uint64
	PendingPayments uint64
}

func (obj *AdProviderAccount) Marshal() []byte {
	buf := new(bytes.Buffer)

	putDiscriminator(buf, AdProviderAccountDiscriminator)
	putKey(buf, obj.Authority)
	putUint32(buf, uint32(len(obj.Devices)))
	for _, device := range obj.Devices {
		putDevice(buf, device)
	}
	putString(buf, obj.Name)
	putString(buf, obj.Location)
	putString(buf, obj.ContactEmail)
	putUint8(buf, obj.Rating)
	putUint32(buf, obj.TotalCampaigns)
	putBool(buf, obj.IsActive)
	putUint64(buf, obj.TotalEarnings)
	putUint64(buf, obj.PendingPayments)

	return buf.Bytes()
}

func (obj *AdProviderAccount) Unmarshal(data []byte) error {
	d := newDecoder(data)

	d.readDiscriminator(AdProviderAccountDiscriminator)
	obj.Authority = d.readKey()

	deviceCount := d.readUint32()
	obj.Devices = make([]Device, 0, deviceCount)
	for i := uint32(0); i < deviceCount; i++ {
		if d.err != nil {
			break
		}
		obj.Devices = append(obj.Devices, d.readDevice())
	}

	obj.Name = d.readString()
	obj.Location = d.readString()
	obj.ContactEmail = d.readString()
	obj.Rating = d.readUint8()
	obj.TotalCampaigns = d.readUint32()
	obj.IsActive = d.readBool()
	obj.TotalEarnings = d.readUint64()
	obj.PendingPayments = d.readUint64()

	return d.err
}

// AvailableDevices returns the subset of devices that can be booked.
func (obj *AdProviderAccount) AvailableDevices() []Device {
	var available []Device
	for _, device := range obj.Devices {
		if device.DeviceState == DeviceStateAvailable {
			available = append(available, device)
		}
	}
	return available
}

func (obj *AdProviderAccount) String() string {
	return fmt.Sprintf(
		"AdProvider{authority=%s,devices=%d,name=%s,location=%s,rating=%d,total_campaigns=%d,is_active=%t,total_earnings=%d,pending_payments=%d}",
		base58.Encode(obj.Authority),
		len(obj.Devices),
		obj.Name,
		obj.Location,
		obj.Rating,
		obj.TotalCampaigns,
		obj.IsActive,
		obj.TotalEarnings,
		obj.PendingPayments,
	)
}
