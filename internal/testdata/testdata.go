// Package testdata provides deterministic pseudorandom inputs for tests, fuzz seeds, and benchmarks.
package testdata

import (
	"crypto/sha3"
	"encoding/binary"
)

// DRBG is a deterministic random bit generator built on SHAKE128.
type DRBG struct {
	shake *sha3.SHAKE
}

// New returns a DRBG whose output is determined entirely by the given domain string.
func New(domain string) *DRBG {
	shake := sha3.NewSHAKE128()
	_, _ = shake.Write([]byte(domain))
	return &DRBG{shake: shake}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.shake.Read(b)
	return b
}

// Uint64 returns the next 8 bytes of output as a big-endian integer.
func (d *DRBG) Uint64() uint64 {
	return binary.BigEndian.Uint64(d.Data(8))
}

// Lanes returns the next n 64-bit words of output.
func (d *DRBG) Lanes(n int) []uint64 {
	b := d.Data(n * 8)
	lanes := make([]uint64, n)
	for i := range lanes {
		lanes[i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return lanes
}
