package sengled

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CommandType is the wire tag of a state-change instruction.
type CommandType string

const (
	CommandSwitch     CommandType = "switch"
	CommandBrightness CommandType = "brightness"
	CommandColor      CommandType = "color"
	// CommandColorTemperature carries a 0-100 percentage instead of an RGB
	// triplet. The tag is what the mobile app sends for white-spectrum bulbs;
	// it has not been verified against every device model.
	CommandColorTemperature CommandType = "colorTemperature"
)

// currentTime serializes as wall-clock milliseconds sampled at encode time,
// so re-encoding the same command yields a fresh timestamp.
type currentTime struct{}

func (currentTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Now().UnixMilli())
}

// Command is a single state-change instruction addressed to one device. It
// embeds the device address by value and is valid for exactly one publish.
type Command struct {
	Type  CommandType `json:"type"`
	Dn    Mac         `json:"dn"`
	Value string      `json:"value"`
	Time  currentTime `json:"time"`
}

func newCommand(t CommandType, dn Mac, value string) Command {
	return Command{Type: t, Dn: dn, Value: value}
}

// Topic returns the topic commands for this device are published to.
func (c Command) Topic() string {
	return fmt.Sprintf("wifielement/%s/update", c.Dn)
}

// brightnessValue scales an 8-bit level to the 0-100 percentage the service
// expects, truncating like the mobile app does (128 -> "50").
func brightnessValue(level uint8) string {
	return strconv.Itoa(int(level) * 100 / 255)
}

// Color is an RGB triplet, encoded on the wire as "R:G:B" in decimal.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c Color) String() string {
	return fmt.Sprintf("%d:%d:%d", c.R, c.G, c.B)
}

// ParseColor parses a decimal "R:G:B" triplet, each channel 0-255.
func ParseColor(s string) (Color, error) {
	segments := strings.Split(s, ":")
	if len(segments) != 3 {
		return Color{}, fmt.Errorf("color %q: want R:G:B", s)
	}
	var channels [3]uint8
	for i, segment := range segments {
		v, err := strconv.ParseUint(segment, 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: channel %q is not 0-255", s, segment)
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}
