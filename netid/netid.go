// Package netid generates network identifiers from a secure random source:
// IEEE 802 MAC addresses, RFC 4193 ULA prefixes, ephemeral ports and UUIDs.
package netid

import "github.com/projecteru2/netid/random"

// Generator produces identifiers from a single random source.
// It holds no other state and is safe for concurrent use when the source is.
type Generator struct {
	src random.Source
}

// NewGenerator returns a Generator drawing from src. A nil src selects
// random.Crypto().
func NewGenerator(src random.Source) *Generator {
	if src == nil {
		src = random.Crypto()
	}
	return &Generator{src: src}
}

// MACAddress returns a random MAC in lowercase colon-separated form with the
// locally-administered and multicast bits set exactly as requested.
func (g *Generator) MACAddress(locallyAdministered, multicast bool) (string, error) {
	m, err := NewMAC(g.src, locallyAdministered, multicast)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// IPv6ULA returns a random fdXX:XXXX:XXXX::/48 prefix.
func (g *Generator) IPv6ULA() (string, error) {
	u, err := NewULA(g.src)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Port returns a random port from the IANA dynamic range.
func (g *Generator) Port() (int, error) {
	return NewPort(g.src)
}

var std = NewGenerator(nil)

// GenerateMACAddress is MACAddress on the crypto-backed default generator.
func GenerateMACAddress(locallyAdministered, multicast bool) (string, error) {
	return std.MACAddress(locallyAdministered, multicast)
}

// GenerateIPv6ULA is IPv6ULA on the crypto-backed default generator.
func GenerateIPv6ULA() (string, error) {
	return std.IPv6ULA()
}
