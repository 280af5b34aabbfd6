// Package ascon implements the [Ascon] permutation over a 320-bit state of five 64-bit lanes.
//
// [Ascon]: https://ascon.iaik.tugraz.at/files/asconv12-nist.pdf
package ascon

import (
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// Width is the permutation's width in bytes.
const Width = 40

// State is a permutation state. Lane 0 is the rate; lanes 1 through 4 are the capacity.
type State [5]uint64

// Permute applies the given number of rounds of the Ascon permutation to s and returns the result. The round constants
// are taken from the tail of the 12-round schedule, so Permute(s, 6) runs the last six rounds of Permute(s, 12).
func Permute(s State, rounds int) State {
	switch rounds {
	case 12:
		return permute12(s)
	case 6:
		return permute6(s)
	default:
		return permuteGeneric(s, rounds)
	}
}

// String returns the hex encoding of the state's binary form.
func (s State) String() string {
	b, _ := s.AppendBinary(make([]byte, 0, Width))
	return hex.EncodeToString(b)
}

// AppendBinary appends the big-endian encoding of the state's lanes, lane 0 first.
func (s State) AppendBinary(b []byte) ([]byte, error) {
	for _, x := range s {
		b = binary.BigEndian.AppendUint64(b, x)
	}
	return b, nil
}

func (s State) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, Width))
}

func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != Width {
		return fmt.Errorf("%w: got %d bytes, want %d", errInvalidLength, len(data), Width)
	}
	for i := range s {
		s[i] = binary.BigEndian.Uint64(data[i*8:])
	}
	return nil
}

var errInvalidLength = errors.New("ascon: invalid state length")

var (
	_ fmt.Stringer               = State{}
	_ encoding.BinaryAppender    = State{}
	_ encoding.BinaryMarshaler   = State{}
	_ encoding.BinaryUnmarshaler = (*State)(nil)
)
