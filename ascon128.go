// Package ascon128 provides a block-oriented authenticated encryption scheme with associated data built on the
// [Ascon] permutation. It operates on whole 64-bit blocks: a 128-bit key and a 128-bit nonce initialize a 320-bit
// state, associated data blocks are absorbed into it, plaintext blocks are encrypted through its 64-bit rate, and a
// 128-bit tag is squeezed from it at the end.
//
// Partitioning byte streams into blocks, and any padding needed to reach a block boundary, is the caller's
// responsibility. The framing must be injective: a message consisting of a single all-zero block and the empty message
// produce the same tag, so callers that need to distinguish message lengths must encode them.
//
// Nonces must be unique per key. Nothing here generates or tracks them.
//
// [Ascon]: https://ascon.iaik.tugraz.at
package ascon128

import (
	"crypto/subtle"
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// KeySize is the size of a key, in bytes.
	KeySize = 16

	// NonceSize is the size of a nonce, in bytes.
	NonceSize = 16

	// TagSize is the size of an authentication tag, in bytes.
	TagSize = 16

	// BlockSize is the size of a plaintext, ciphertext, or associated data block, in bytes.
	BlockSize = 8

	// IV is the first lane of the initial state. It encodes the key size, rate, and round counts.
	IV = uint64((KeySize*8)<<24|(BlockSize*8)<<16|paRounds<<8|pbRounds) << 32

	paRounds = 12 // Rounds for initialization and finalization.
	pbRounds = 6  // Rounds between blocks.
)

var (
	// ErrAuthenticationFailed is returned when a ciphertext, its associated data, or its tag has been modified, or when
	// it is decrypted with the wrong key or nonce.
	ErrAuthenticationFailed = errors.New("ascon128: message authentication failed")

	// ErrInvalidParameters is returned when a key or nonce is not 128 bits, or when input and output block sequences
	// differ in length. It is returned before any state is modified.
	ErrInvalidParameters = errors.New("ascon128: invalid parameters")
)

// A Key is a 128-bit secret key as two 64-bit lanes.
type Key [2]uint64

// NewKey returns the key encoded big-endian in b, which must be exactly KeySize bytes.
func NewKey(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidParameters, len(b), KeySize)
	}
	return Key(decodePair(b)), nil
}

// A Nonce is a 128-bit nonce as two 64-bit lanes.
type Nonce [2]uint64

// NewNonce returns the nonce encoded big-endian in b, which must be exactly NonceSize bytes.
func NewNonce(b []byte) (Nonce, error) {
	if len(b) != NonceSize {
		return Nonce{}, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrInvalidParameters, len(b), NonceSize)
	}
	return Nonce(decodePair(b)), nil
}

// A Tag is a 128-bit authentication tag as two 64-bit lanes.
type Tag [2]uint64

// Equal reports whether t and u are equal, in constant time.
func (t Tag) Equal(u Tag) bool {
	return VerifyTag(t, u)
}

// String returns the hex encoding of the tag's binary form.
func (t Tag) String() string {
	b, _ := t.AppendBinary(make([]byte, 0, TagSize))
	return hex.EncodeToString(b)
}

// AppendBinary appends the big-endian encoding of the tag. It implements encoding.BinaryAppender.
func (t Tag) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint64(b, t[0])
	b = binary.BigEndian.AppendUint64(b, t[1])
	return b, nil
}

// MarshalBinary returns the big-endian encoding of the tag. It implements encoding.BinaryMarshaler.
func (t Tag) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, TagSize))
}

// UnmarshalBinary decodes a big-endian tag of exactly TagSize bytes. It implements encoding.BinaryUnmarshaler.
func (t *Tag) UnmarshalBinary(data []byte) error {
	if len(data) != TagSize {
		return fmt.Errorf("%w: tag is %d bytes, want %d", ErrInvalidParameters, len(data), TagSize)
	}
	*t = Tag(decodePair(data))
	return nil
}

// VerifyTag reports whether the computed and received tags are equal. Every bit of both lanes is compared regardless of
// where they differ.
func VerifyTag(computed, received Tag) bool {
	var a, b [TagSize]byte
	binary.BigEndian.PutUint64(a[:8], computed[0])
	binary.BigEndian.PutUint64(a[8:], computed[1])
	binary.BigEndian.PutUint64(b[:8], received[0])
	binary.BigEndian.PutUint64(b[8:], received[1])
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// Encrypt encrypts the plaintext blocks under the given key and nonce, authenticating them along with the associated
// data blocks. It returns ciphertext blocks of the same length as the plaintext and the authentication tag.
func Encrypt(key Key, nonce Nonce, ad, plaintext []uint64) ([]uint64, Tag) {
	s := NewSession(key, nonce)
	s.AbsorbAssociatedData(ad)
	return s.Seal(nil, plaintext)
}

// Decrypt decrypts the ciphertext blocks under the given key and nonce and verifies the tag against them and the
// associated data blocks. If the tag is valid, it returns the plaintext blocks; otherwise, it returns
// ErrAuthenticationFailed and no plaintext.
func Decrypt(key Key, nonce Nonce, ad, ciphertext []uint64, tag Tag) ([]uint64, error) {
	s := NewSession(key, nonce)
	s.AbsorbAssociatedData(ad)
	return s.Open(nil, ciphertext, tag)
}

// DecryptTo is like Decrypt but writes the plaintext into dst, which must be the same length as the ciphertext. If the
// tag is invalid, dst is zeroed and ErrAuthenticationFailed is returned.
func DecryptTo(dst []uint64, key Key, nonce Nonce, ad, ciphertext []uint64, tag Tag) error {
	if len(dst) != len(ciphertext) {
		return fmt.Errorf("%w: dst has %d blocks, ciphertext has %d", ErrInvalidParameters, len(dst), len(ciphertext))
	}

	s := NewSession(key, nonce)
	s.AbsorbAssociatedData(ad)
	_, err := s.Open(dst[:0], ciphertext, tag)
	return err
}

func decodePair(b []byte) [2]uint64 {
	return [2]uint64{binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:])}
}

var (
	_ fmt.Stringer               = Tag{}
	_ encoding.BinaryAppender    = Tag{}
	_ encoding.BinaryMarshaler   = Tag{}
	_ encoding.BinaryUnmarshaler = (*Tag)(nil)
)
