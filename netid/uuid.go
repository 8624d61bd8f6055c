package netid

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/projecteru2/netid/random"
)

// UUID returns a random (version 4) UUID drawn from the generator's source.
func (g *Generator) UUID() (string, error) {
	u, err := uuid.NewRandomFromReader(sourceReader{g.src})
	if err != nil {
		return "", fmt.Errorf("generate UUID: %w", err)
	}
	return u.String(), nil
}

// UUIDv5 returns a deterministic UUID v5 for name in the URL namespace.
func UUIDv5(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// sourceReader exposes a Source as an io.Reader for libraries that take one.
type sourceReader struct {
	src random.Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	b, err := r.src.Fill(len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, b), nil
}
