package sengled

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Mac is the 6-byte address the cloud uses to identify a device. It is a
// value type: copying it keeps a command addressable after the device list
// that produced it is gone.
type Mac [6]byte

// ParseMac parses a colon-separated hex representation, e.g.
// "B0:CE:18:14:03:2D". Segments of one hex digit are accepted, since that is
// how the service renders octets below 0x10.
func ParseMac(s string) (Mac, error) {
	var mac Mac
	segments := strings.Split(s, ":")
	if len(segments) != len(mac) {
		return mac, fmt.Errorf("%w: %q has %d segments, want %d", ErrInvalidMac, s, len(segments), len(mac))
	}
	for i, segment := range segments {
		if len(segment) > 2 {
			return mac, fmt.Errorf("%w: %q: segment %q too long", ErrInvalidMac, s, segment)
		}
		b, err := strconv.ParseUint(segment, 16, 8)
		if err != nil {
			return mac, fmt.Errorf("%w: %q: segment %q is not a hex octet", ErrInvalidMac, s, segment)
		}
		mac[i] = byte(b)
	}
	return mac, nil
}

func (m Mac) String() string {
	segments := make([]string, len(m))
	for i, b := range m {
		segments[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(segments, ":")
}

func (m Mac) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m Mac) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
