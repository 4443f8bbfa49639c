package sengled

import "errors"

var (
	// ErrAuthenticationFailed means the service rejected the credentials, or
	// answered the login with a body of an unrecognized shape. Not retryable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidMac means a device identifier string did not parse as six
	// colon-separated hex octets.
	ErrInvalidMac = errors.New("invalid device identifier")

	// ErrNoNameAttribute means a device record carried no "name" attribute.
	ErrNoNameAttribute = errors.New("no name attribute in device record")
)
