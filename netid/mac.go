package netid

import (
	"fmt"
	"net"

	"github.com/projecteru2/netid/random"
)

const (
	macLen = 6

	multicastBit = 0x01
	localBit     = 0x02
)

// MAC is an IEEE 802 48-bit hardware address.
type MAC [macLen]byte

// NewMAC draws 6 bytes from src and forces the two flag bits of the first
// octet: bit 1 is the locally-administered bit, bit 0 the multicast bit.
// All other bits are used as drawn.
func NewMAC(src random.Source, locallyAdministered, multicast bool) (MAC, error) {
	var m MAC
	buf, err := src.Fill(macLen)
	if err != nil {
		return m, fmt.Errorf("generate MAC: %w", err)
	}
	copy(m[:], buf)

	m[0] &^= localBit | multicastBit
	if locallyAdministered {
		m[0] |= localBit
	}
	if multicast {
		m[0] |= multicastBit
	}
	return m, nil
}

// Local reports whether the locally-administered bit is set.
func (m MAC) Local() bool { return m[0]&localBit != 0 }

// Multicast reports whether the multicast bit is set.
func (m MAC) Multicast() bool { return m[0]&multicastBit != 0 }

func (m MAC) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, macLen)
	copy(hw, m[:])
	return hw
}

// String renders the address as lowercase colon-separated hex pairs.
func (m MAC) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}
