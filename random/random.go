package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
)

// ErrEntropyUnavailable is returned when the underlying source cannot
// supply the requested bytes.
var ErrEntropyUnavailable = errors.New("entropy unavailable")

// Source supplies uniformly random, independent bytes.
// Implementations must be safe for concurrent use.
type Source interface {
	Fill(n int) ([]byte, error)
}

type readerSource struct {
	r io.Reader
}

// Crypto returns a Source backed by crypto/rand.
func Crypto() Source {
	return readerSource{r: rand.Reader}
}

// Reader adapts r into a Source. Concurrency safety is inherited from r.
func Reader(r io.Reader) Source {
	return readerSource{r: r}
}

// Fill reads exactly n bytes. Short reads and read failures are reported
// as ErrEntropyUnavailable; no fallback source is ever tried.
func (s readerSource) Fill(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, fmt.Errorf("%w: read %d bytes: %w", ErrEntropyUnavailable, n, err)
	}
	return buf, nil
}

// Uint32n returns a uniform value in [0, n) drawn from src.
// Values in the biased tail are rejected and redrawn.
func Uint32n(src Source, n uint32) (uint32, error) {
	if n == 0 {
		return 0, errors.New("random: n must be positive")
	}
	limit := ^uint32(0) - (^uint32(0) % n)
	for {
		b, err := src.Fill(4) //nolint:mnd
		if err != nil {
			return 0, err
		}
		v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		if v < limit {
			return v % n, nil
		}
	}
}

// Counter wraps a Source and counts the bytes successfully drawn from it.
type Counter struct {
	Source
	n atomic.Int64
}

// Count returns a Counter around src.
func Count(src Source) *Counter {
	return &Counter{Source: src}
}

func (c *Counter) Fill(n int) ([]byte, error) {
	b, err := c.Source.Fill(n)
	if err == nil {
		c.n.Add(int64(len(b)))
	}
	return b, err
}

var _ Source = (*Counter)(nil)

// Drawn returns the total bytes drawn so far.
func (c *Counter) Drawn() int64 { return c.n.Load() }
