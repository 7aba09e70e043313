// Package macaddr parses and generates Ethernet hardware addresses.
package macaddr

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by Parse when the input does not consist of
// exactly six ':' or '-' separated groups.
var ErrInvalidFormat = errors.New("expected six ':' or '-' separated hex octets")

// Parse converts a string like "0a:0b:0c:0d:0e:0f" (colon or hyphen
// separated) into a 6-byte hardware address.
func Parse(s string) (net.HardwareAddr, error) {
	parts := strings.Split(strings.ReplaceAll(s, "-", ":"), ":")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid MAC address %q: %w", s, ErrInvalidFormat)
	}

	mac := make(net.HardwareAddr, 6)
	for i, part := range parts {
		b, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex part %q in %q: %w", part, s, err)
		}
		mac[i] = byte(b)
	}
	return mac, nil
}

// Random returns a random locally administered, unicast hardware address.
func Random() net.HardwareAddr {
	mac := make(net.HardwareAddr, 6)
	rand.Read(mac) // documented to never fail
	mac[0] = (mac[0] | 0x02) &^ 0x01
	return mac
}
