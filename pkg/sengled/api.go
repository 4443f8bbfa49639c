// Package sengled talks to the Sengled cloud: it logs in over HTTPS, lists
// the account's registered devices, and publishes state-change commands to
// them over the cloud's MQTT endpoint.
//
// The protocol is write-only. Commands are delivered to the broker but the
// devices never acknowledge them, and the session is never refreshed: when
// the token expires or the connection drops, operations fail and the caller
// has to build a new Api.
package sengled

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/asnowfix/lights-sengled/mymqtt"
	"github.com/go-logr/logr"
)

const (
	LoginUrl      = "https://ucenter.cloud.sengled.com/user/app/customer/v2/AuthenCross.json"
	DeviceListUrl = "https://life2.cloud.sengled.com/life2/device/list.json"
	BrokerUrl     = "wss://us-mqtt.cloud.sengled.com:443/mqtt"

	// clientIdSuffix is appended to the session token to form the MQTT
	// client_id, the way the mobile app identifies itself.
	clientIdSuffix = "@lifeApp"

	// requestedWith is sent on the MQTT websocket upgrade alongside the
	// session cookie.
	requestedWith = "com.sengled.life2"
)

// Api is one logged-in session: one token and one MQTT connection, both
// living exactly as long as the Api value. Command operations are safe to
// call concurrently, but ordering between in-flight publishes is up to the
// broker; callers that need per-device ordering must serialize their calls.
type Api struct {
	log        logr.Logger
	http       *http.Client
	mqtt       mymqtt.Client
	sessionId  string
	loginUrl   string
	devicesUrl string
}

// NewE logs in and opens the command connection. Either step failing is
// fatal: no partial Api is ever returned.
func NewE(ctx context.Context, log logr.Logger, user string, pass string) (*Api, error) {
	a := &Api{
		log:        log.WithName("sengled"),
		http:       http.DefaultClient,
		loginUrl:   LoginUrl,
		devicesUrl: DeviceListUrl,
	}

	sessionId, err := a.login(ctx, user, pass)
	if err != nil {
		return nil, err
	}
	a.sessionId = sessionId

	broker, err := url.Parse(BrokerUrl)
	if err != nil {
		return nil, fmt.Errorf("broker url: %w", err)
	}

	headers := http.Header{}
	headers.Set("Cookie", a.sessionCookie())
	headers.Set("X-Requested-With", requestedWith)

	client, err := mymqtt.NewClientE(ctx, log, broker, sessionId+clientIdSuffix, headers)
	if err != nil {
		return nil, err
	}
	a.mqtt = client

	return a, nil
}

func (a *Api) sessionCookie() string {
	return "JSESSIONID=" + a.sessionId
}

// GetDevices fetches the device inventory, in the order the service returns
// it. One malformed record fails the whole fetch; there are no partial lists.
func (a *Api) GetDevices(ctx context.Context) ([]Device, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.devicesUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("device list: %w", err)
	}
	req.Header.Set("Cookie", a.sessionCookie())

	a.log.Info("Fetching device list", "url", a.devicesUrl)
	res, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("device list: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device list: unexpected status %s", res.Status)
	}

	var out devicesResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("device list: %w", err)
	}

	a.log.Info("Fetched device list", "count", len(out.DeviceList))
	return out.DeviceList, nil
}

// sendCommand serializes cmd (stamping it with the current time) and waits
// for the broker to take the publish. Devices never acknowledge.
func (a *Api) sendCommand(ctx context.Context, cmd Command) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("command %s for %s: %w", cmd.Type, cmd.Dn, err)
	}
	return a.mqtt.Publish(ctx, cmd.Topic(), payload)
}

func (a *Api) TurnOn(ctx context.Context, device Device) error {
	return a.sendCommand(ctx, newCommand(CommandSwitch, device.Uuid, "1"))
}

func (a *Api) TurnOff(ctx context.Context, device Device) error {
	return a.sendCommand(ctx, newCommand(CommandSwitch, device.Uuid, "0"))
}

// SetBrightness takes an 8-bit level; 255 is full brightness.
func (a *Api) SetBrightness(ctx context.Context, device Device, level uint8) error {
	return a.sendCommand(ctx, newCommand(CommandBrightness, device.Uuid, brightnessValue(level)))
}

func (a *Api) SetColor(ctx context.Context, device Device, color Color) error {
	return a.sendCommand(ctx, newCommand(CommandColor, device.Uuid, color.String()))
}

// SetColorTemperature takes a percentage: 0 is the warmest white the bulb
// does, 100 the coldest. Values above 100 are clamped.
func (a *Api) SetColorTemperature(ctx context.Context, device Device, percent uint8) error {
	if percent > 100 {
		percent = 100
	}
	return a.sendCommand(ctx, newCommand(CommandColorTemperature, device.Uuid, strconv.Itoa(int(percent))))
}

// Close drops the command connection. The Api is not usable afterwards.
func (a *Api) Close() {
	if a.mqtt != nil {
		a.mqtt.Close()
	}
}
