package sengled

import (
	"errors"
	"testing"
)

func TestParseMac(t *testing.T) {
	mac, err := ParseMac("B0:CE:18:14:03:2D")
	if err != nil {
		t.Fatalf("ParseMac failed: %v", err)
	}
	want := Mac{0xB0, 0xCE, 0x18, 0x14, 0x03, 0x2D}
	if mac != want {
		t.Errorf("ParseMac = %v, want %v", mac, want)
	}
}

func TestParseMacLowercase(t *testing.T) {
	mac, err := ParseMac("b0:ce:18:14:03:2d")
	if err != nil {
		t.Fatalf("ParseMac failed: %v", err)
	}
	if mac.String() != "B0:CE:18:14:03:2D" {
		t.Errorf("String = %q, want canonical uppercase form", mac.String())
	}
}

func TestParseMacSingleDigitSegments(t *testing.T) {
	// The service renders octets below 0x10 with a single digit.
	mac, err := ParseMac("A:B:C:D:E:F")
	if err != nil {
		t.Fatalf("ParseMac failed: %v", err)
	}
	want := Mac{0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}
	if mac != want {
		t.Errorf("ParseMac = %v, want %v", mac, want)
	}
}

func TestMacRoundTrip(t *testing.T) {
	for _, mac := range []Mac{
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x02, 0x03, 0x0A, 0x0B, 0x0C},
		{0xB0, 0xCE, 0x18, 0x14, 0x03, 0x2D},
	} {
		parsed, err := ParseMac(mac.String())
		if err != nil {
			t.Fatalf("ParseMac(%q) failed: %v", mac.String(), err)
		}
		if parsed != mac {
			t.Errorf("round trip of %v gave %v", mac, parsed)
		}
	}
}

func TestParseMacErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"AA",
		"AA:BB:CC:DD:EE",
		"AA:BB:CC:DD:EE:FF:00",
		"GG:BB:CC:DD:EE:FF",
		"AA:BB:CC:DD:EE:",
		"AA-BB-CC-DD-EE-FF",
		"AAA:BB:CC:DD:EE:FF",
		"0xAA:BB:CC:DD:EE:FF",
	} {
		if _, err := ParseMac(s); !errors.Is(err, ErrInvalidMac) {
			t.Errorf("ParseMac(%q) = %v, want ErrInvalidMac", s, err)
		}
	}
}

func TestMacString(t *testing.T) {
	mac := Mac{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	if mac.String() != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("String = %q", mac.String())
	}
	low := Mac{0x0A, 0x00, 0x01, 0x02, 0x03, 0x04}
	if low.String() != "0A:00:01:02:03:04" {
		t.Errorf("String = %q, want zero-padded octets", low.String())
	}
}
