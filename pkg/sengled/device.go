package sengled

import (
	"encoding/json"
	"fmt"
)

// Device is one entry of the account's registered-device inventory. Values
// are immutable once decoded; refreshing the inventory produces new values.
type Device struct {
	Name string `json:"name"`
	Uuid Mac    `json:"deviceUuid"`
}

type attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// rawDevice is the shape the device-list endpoint sends: the display name is
// buried in a generic name/value attribute list.
type rawDevice struct {
	DeviceUuid    string      `json:"deviceUuid"`
	AttributeList []attribute `json:"attributeList"`
}

func (d *Device) UnmarshalJSON(data []byte) error {
	var raw rawDevice
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	mac, err := ParseMac(raw.DeviceUuid)
	if err != nil {
		return err
	}

	for _, attr := range raw.AttributeList {
		if attr.Name == "name" {
			*d = Device{Name: attr.Value, Uuid: mac}
			return nil
		}
	}
	return fmt.Errorf("%w: device %s", ErrNoNameAttribute, raw.DeviceUuid)
}

type devicesResponse struct {
	DeviceList []Device `json:"deviceList"`
}
