package oracle

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"
)

const deviceFeedAccountSize = (8 + // discriminator
	4 + // channel_id
	4 + // last_entry_id
	8 + // total_views
	8 + // total_taps
	8 + // last_update_ts
	32 + // authority
	1) // bump

var DeviceFeedAccountDiscriminator = accountDiscriminator("DeviceFeed")

// DeviceFeedAccount mirrors a ThingSpeak channel's engagement counters on
// chain. Keepers push fresh readings; campaigns consume them when updating
// performance.
type DeviceFeedAccount struct {
	ChannelID    uint32
	LastEntryID  uint32
	TotalViews   uint64
	TotalTaps    uint64
	LastUpdateTs int64
	Authority    ed25519.PublicKey
	Bump         uint8
}

func (obj *DeviceFeedAccount) Marshal() []byte {
	data := make([]byte, deviceFeedAccountSize)

	var offset int
	copy(data, DeviceFeedAccountDiscriminator)
	offset += 8
	binary.LittleEndian.PutUint32(data[offset:], obj.ChannelID)
	offset += 4
	binary.LittleEndian.PutUint32(data[offset:], obj.LastEntryID)
	offset += 4
	binary.LittleEndian.PutUint64(data[offset:], obj.TotalViews)
	offset += 8
	binary.LittleEndian.PutUint64(data[offset:], obj.TotalTaps)
	offset += 8
	binary.LittleEndian.PutUint64(data[offset:], uint64(obj.LastUpdateTs))
	offset += 8
	copy(data[offset:], obj.Authority)
	offset += 32
	data[offset] = obj.Bump

	return data
}

func (obj *DeviceFeedAccount) Unmarshal(data []byte) error {
	if len(data) < deviceFeedAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	if !bytes.Equal(data[:8], DeviceFeedAccountDiscriminator) {
		return ErrInvalidAccountData
	}
	offset += 8
	obj.ChannelID = binary.LittleEndian.Uint32(data[offset:])
	offset += 4
	obj.LastEntryID = binary.LittleEndian.Uint32(data[offset:])
	offset += 4
	obj.TotalViews = binary.LittleEndian.Uint64(data[offset:])
	offset += 8
	obj.TotalTaps = binary.LittleEndian.Uint64(data[offset:])
	offset += 8
	obj.LastUpdateTs = int64(binary.LittleEndian.Uint64(data[offset:]))
	offset += 8
	obj.Authority = make([]byte, ed25519.PublicKeySize)
	copy(obj.Authority, data[offset:])
	offset += 32
	obj.Bump = data[offset]

	return nil
}

func (obj *DeviceFeedAccount) String() string {
	return fmt.Sprintf(
		"DeviceFeed{channel_id=%d,last_entry_id=%d,total_views=%d,total_taps=%d,last_update_ts=%d,authority=%s,bump=%d}",
		obj.ChannelID,
		obj.LastEntryID,
		obj.TotalViews,
		obj.TotalTaps,
		obj.LastUpdateTs,
		base58.Encode(obj.Authority),
		obj.Bump,
	)
}

func accountDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("account:" + name))
	return h[:8]
}
