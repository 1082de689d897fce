package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand. It backs battles that
// have no explicit seed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ForSeed seeds from seed when set, otherwise from NewSeed.
func ForSeed(seed *int64) (*Stream, error) {
	if seed != nil {
		return New(*seed), nil
	}
	s, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(s), nil
}
