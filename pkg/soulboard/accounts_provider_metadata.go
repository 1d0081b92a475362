package soulboard

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

var ProviderMetadataAccountDiscriminator = accountDiscriminator("ProviderMetadata")

// ProviderMetadataAccount is a lightweight companion to AdProviderAccount,
// kept small so registry wide scans stay cheap.
type ProviderMetadataAccount struct {
	Authority        ed25519.PublicKey
	ProviderPda      ed25519.PublicKey
	Name             string
	Location         string
	DeviceCount      uint32
	AvailableDevices uint32
	Rating           uint8
	IsActive         bool
}

func (obj *ProviderMetadataAccount) Marshal() []byte {
	buf := new(bytes.Buffer)

	putDiscriminator(buf, ProviderMetadataAccountDiscriminator)
	putKey(buf, obj.Authority)
	putKey(buf, obj.ProviderPda)
	putString(buf, obj.Name)
	putString(buf, obj.Location)
	putUint32(buf, obj.DeviceCount)
	putUint32(buf, obj.AvailableDevices)
	putUint8(buf, obj.Rating)
	putBool(buf, obj.IsActive)

	return buf.Bytes()
}

func (obj *ProviderMetadataAccount) Unmarshal(data []byte) error {
	d := newDecoder(data)

	d.readDiscriminator(ProviderMetadataAccountDiscriminator)
	obj.Authority = d.readKey()
	obj.ProviderPda = d.readKey()
	obj.Name = d.readString()
	obj.Location = d.readString()
	obj.DeviceCount = d.readUint32()
	obj.AvailableDevices = d.readUint32()
	obj.Rating = d.readUint8()
	obj.IsActive = d.readBool()

	return d.err
}

func (obj *ProviderMetadataAccount) String() string {
	return fmt.Sprintf(
		"ProviderMetadata{authority=%s,provider_pda=%s,name=%s,location=%s,device_count=%d,available_devices=%d,rating=%d,is_active=%t}",
		base58.Encode(obj.Authority),
		base58.Encode(obj.ProviderPda),
		obj.Name,
		obj.Location,
		obj.DeviceCount,
		obj.AvailableDevices,
		obj.Rating,
		obj.IsActive,
	)
}
