package sengled

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr/testr"
)

const twoDevices = `{
	"deviceList": [
		{
			"deviceUuid": "B0:CE:18:14:03:2D",
			"attributeList": [
				{"name": "version", "value": "9"},
				{"name": "name", "value": "Living Room"},
				{"name": "onoff", "value": "1"}
			]
		},
		{
			"deviceUuid": "B0:CE:18:14:03:2E",
			"attributeList": [
				{"name": "name", "value": "Bedroom"}
			]
		}
	]
}`

func devicesApi(t *testing.T, body string, status int) *Api {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("device list fetched with %s, want POST", r.Method)
		}
		if cookie := r.Header.Get("Cookie"); cookie != "JSESSIONID=abc" {
			t.Errorf("Cookie = %q, want session cookie", cookie)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &Api{
		log:        testr.New(t),
		http:       srv.Client(),
		sessionId:  "abc",
		devicesUrl: srv.URL,
	}
}

func TestGetDevices(t *testing.T) {
	api := devicesApi(t, twoDevices, http.StatusOK)

	devices, err := api.GetDevices(context.Background())
	if err != nil {
		t.Fatalf("GetDevices failed: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2", len(devices))
	}
	if devices[0].Name != "Living Room" || devices[0].Uuid.String() != "B0:CE:18:14:03:2D" {
		t.Errorf("first device = %+v", devices[0])
	}
	if devices[1].Name != "Bedroom" || devices[1].Uuid.String() != "B0:CE:18:14:03:2E" {
		t.Errorf("second device = %+v", devices[1])
	}
}

func TestGetDevicesMissingName(t *testing.T) {
	// A record with no "name" attribute fails the whole fetch, it does not
	// come back with an empty name.
	body := `{"deviceList": [{
		"deviceUuid": "B0:CE:18:14:03:2D",
		"attributeList": [{"name": "onoff", "value": "1"}]
	}]}`
	api := devicesApi(t, body, http.StatusOK)

	devices, err := api.GetDevices(context.Background())
	if !errors.Is(err, ErrNoNameAttribute) {
		t.Fatalf("GetDevices = (%v, %v), want ErrNoNameAttribute", devices, err)
	}
}

func TestGetDevicesBadUuid(t *testing.T) {
	body := `{"deviceList": [{
		"deviceUuid": "not-a-mac",
		"attributeList": [{"name": "name", "value": "Hall"}]
	}]}`
	api := devicesApi(t, body, http.StatusOK)

	if _, err := api.GetDevices(context.Background()); !errors.Is(err, ErrInvalidMac) {
		t.Fatalf("GetDevices = %v, want ErrInvalidMac", err)
	}
}

func TestGetDevicesBadStatus(t *testing.T) {
	api := devicesApi(t, "session expired", http.StatusUnauthorized)
	if _, err := api.GetDevices(context.Background()); err == nil {
		t.Fatal("GetDevices succeeded against a 401")
	}
}

func TestGetDevicesEmpty(t *testing.T) {
	api := devicesApi(t, `{"deviceList": []}`, http.StatusOK)
	devices, err := api.GetDevices(context.Background())
	if err != nil {
		t.Fatalf("GetDevices failed: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("got %d devices, want 0", len(devices))
	}
}
