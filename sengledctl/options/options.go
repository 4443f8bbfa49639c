package options

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/asnowfix/lights-sengled/pkg/sengled"
	"github.com/go-logr/logr"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

var Flags struct {
	Verbose        bool
	Debug          bool
	Json           bool
	User           string
	Pass           string
	CommandTimeout time.Duration
}

// Api is the session opened by the root command for the duration of one
// invocation.
var Api *sengled.Api

// Credentials resolves the account credentials: flags first, then the
// SENGLED_USER / SENGLED_PASS environment.
func Credentials() (string, string, error) {
	v := viper.New()
	v.SetEnvPrefix("sengled")
	v.AutomaticEnv()

	user := Flags.User
	if user == "" {
		user = v.GetString("user")
	}
	pass := Flags.Pass
	if pass == "" {
		pass = v.GetString("pass")
	}
	if user == "" || pass == "" {
		return "", "", fmt.Errorf("missing credentials: set SENGLED_USER and SENGLED_PASS, or use --user/--pass")
	}
	return user, pass, nil
}

func CommandLineContext(log logr.Logger, timeout time.Duration) context.Context {
	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		signal.Notify(signals, syscall.SIGTERM)
		<-signals
		log.Info("Received signal")
		cancel()
	}()
	return ctx
}

// LookupDevice finds a device by display name, or by identifier when the
// argument parses as one.
func LookupDevice(ctx context.Context, api *sengled.Api, name string) (sengled.Device, error) {
	devices, err := api.GetDevices(ctx)
	if err != nil {
		return sengled.Device{}, err
	}

	if mac, err := sengled.ParseMac(name); err == nil {
		for _, device := range devices {
			if device.Uuid == mac {
				return device, nil
			}
		}
	}
	for _, device := range devices {
		if strings.EqualFold(device.Name, name) {
			return device, nil
		}
	}
	return sengled.Device{}, fmt.Errorf("no device matching %q", name)
}

func PrintResult(out any) error {
	var s []byte
	var err error
	if Flags.Json {
		s, err = json.Marshal(out)
	} else {
		s, err = yaml.Marshal(out)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(s))
	return nil
}
