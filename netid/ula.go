package netid

import (
	"fmt"
	"net/netip"

	"github.com/projecteru2/netid/random"
)

const (
	globalIDLen = 5

	// ulaLocal is the fd00::/8 locally-assigned half of fc00::/7.
	ulaLocal = 0xfd
	ulaBits  = 48
)

// ULA is the 40-bit Global ID of an RFC 4193 locally-assigned /48 prefix.
type ULA [globalIDLen]byte

// NewULA draws a 40-bit Global ID from src. Uniqueness is statistical only.
func NewULA(src random.Source) (ULA, error) {
	var u ULA
	buf, err := src.Fill(globalIDLen)
	if err != nil {
		return u, fmt.Errorf("generate ULA: %w", err)
	}
	copy(u[:], buf)
	return u, nil
}

// String renders the prefix as fdXX:XXXX:XXXX::/48.
func (u ULA) String() string {
	return fmt.Sprintf("fd%02x:%02x%02x:%02x%02x::/%d", u[0], u[1], u[2], u[3], u[4], ulaBits)
}

func (u ULA) Prefix() netip.Prefix {
	var a [16]byte
	a[0] = ulaLocal
	copy(a[1:], u[:])
	return netip.PrefixFrom(netip.AddrFrom16(a), ulaBits)
}
