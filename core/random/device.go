package random

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// DeviceSource reads raw bytes from the operating system's entropy device
// and normalizes them into floats in [0,1). Each value consumes 8 bytes;
// the top 53 bits are kept so the result is exactly representable.
type DeviceSource struct {
	reader io.Reader
}

// DeviceOption configures a DeviceSource.
type DeviceOption func(*DeviceSource)

// WithReader overrides the entropy reader. Intended for tests.
func WithReader(r io.Reader) DeviceOption {
	return func(s *DeviceSource) {
		if r != nil {
			s.reader = r
		}
	}
}

// NewDeviceSource creates a source backed by crypto/rand.Reader.
func NewDeviceSource(opts ...DeviceOption) *DeviceSource {
	s := &DeviceSource{reader: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draw returns n values in [0,1) derived from raw entropy bytes.
func (s *DeviceSource) Draw(_ context.Context, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidBatchSize
	}

	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, fmt.Errorf("read entropy device: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		raw := binary.BigEndian.Uint64(buf[8*i:]) >> 11
		out[i] = float64(raw) / float64(intDomain)
	}
	return out, nil
}
