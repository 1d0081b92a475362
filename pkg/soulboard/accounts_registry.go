package soulboard

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

var ProviderRegistryAccountDiscriminator = accountDiscriminator("ProviderRegistry")

// ProviderRegistryAccount is the program wide singleton listing every
// registered provider and the keepers allowed to push oracle updates.
type ProviderRegistryAccount struct {
	Deployer       ed25519.PublicKey
	TotalProviders uint32
	Providers      []ed25519.PublicKey
	Keepers        []ed25519.PublicKey
}

func (obj *ProviderRegistryAccount) Marshal() []byte {
	buf := new(bytes.Buffer)

	putDiscriminator(buf, ProviderRegistryAccountDiscriminator)
	putKey(buf, obj.Deployer)
	putUint32(buf, obj.TotalProviders)
	putUint32(buf, uint32(len(obj.Providers)))
	for _, k := range obj.Providers {
		putKey(buf, k)
	}
	putUint32(buf, uint32(len(obj.Keepers)))
	for _, k := range obj.Keepers {
		putKey(buf, k)
	}

	return buf.Bytes()
}

func (obj *ProviderRegistryAccount) Unmarshal(data []byte) error {
	d := newDecoder(data)

	d.readDiscriminator(ProviderRegistryAccountDiscriminator)
	obj.Deployer = d.readKey()
	obj.TotalProviders = d.readUint32()
	obj.Providers = d.readKeyVec()
	obj.Keepers = d.readKeyVec()

	return d.err
}

func (obj *ProviderRegistryAccount) IsKeeper(key ed25519.PublicKey) bool {
	for _, k := range obj.Keepers {
		if bytes.Equal(k, key) {
			return true
		}
	}
	return false
}

func (obj *ProviderRegistryAccount) String() string {
	return fmt.Sprintf(
		"ProviderRegistry{deployer=%s,total_providers=%d,providers=%d,keepers=%d}",
		base58.Encode(obj.Deployer),
		obj.TotalProviders,
		len(obj.Providers),
		len(obj.Keepers),
	)
}
