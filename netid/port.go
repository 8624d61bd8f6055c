package netid

import (
	"fmt"

	"github.com/projecteru2/netid/random"
)

// IANA dynamic/private port range (RFC 6335).
const (
	PortMin = 49152
	PortMax = 65535
)

// NewPort draws a uniform port in [PortMin, PortMax].
func NewPort(src random.Source) (int, error) {
	v, err := random.Uint32n(src, PortMax-PortMin+1)
	if err != nil {
		return 0, fmt.Errorf("generate port: %w", err)
	}
	return PortMin + int(v), nil
}
