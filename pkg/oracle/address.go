package oracle

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

var DeviceFeedPrefix = []byte("device_feed")

type GetDeviceFeedAddressArgs struct {
	DeviceID uint32
}

func (p *Program) GetDeviceFeedAddress(args *GetDeviceFeedAddressArgs) (ed25519.PublicKey, uint8, error) {
	deviceIDBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(deviceIDBytes, args.DeviceID)

	return solana.FindProgramAddressAndBump(
		p.ID,
		DeviceFeedPrefix,
		deviceIDBytes,
	)
}
