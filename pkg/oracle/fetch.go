package oracle

import (
	"github.com/pkg/errors"

	"github.com/soulboard/soulboard-server/pkg/solana"
)

func (p *Program) GetDeviceFeed(client solana.Client, deviceID uint32) (*DeviceFeedAccount, error) {
	address, _, err := p.GetDeviceFeedAddress(&GetDeviceFeedAddressArgs{DeviceID: deviceID})
	if err != nil {
		return nil, err
	}

	info, err := client.GetAccountInfo(address, p.Commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrFeedNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get device feed account")
	}

	var account DeviceFeedAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeviceFeedExists reports whether a feed account has been created for the
// device, without decoding it.
func (p *Program) DeviceFeedExists(client solana.Client, deviceID uint32) (bool, error) {
	_, err := p.GetDeviceFeed(client, deviceID)
	if err == ErrFeedNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
