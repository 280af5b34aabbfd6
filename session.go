package ascon128

import (
	"fmt"

	"github.com/codahale/ascon128/internal/ascon"
	"github.com/codahale/ascon128/internal/mem"
)

// A Session encrypts or decrypts a single message under one key and nonce. It owns its permutation state and the key
// captured when it was created; finalization always uses that key.
//
// A session moves through its phases in order: initialized, associated data absorbed, encrypting or decrypting, and
// finalized. A decrypting session ends verified or rejected. Calling a method out of order panics.
//
// Session instances are not concurrent-safe. Distinct sessions share no mutable state.
type Session struct {
	state  ascon.State
	key    Key
	phase  phase
	blocks int // blocks encrypted or decrypted so far
}

// NewSession returns a session initialized with the given key and nonce.
func NewSession(key Key, nonce Nonce) *Session {
	s := &Session{
		state: ascon.Permute(ascon.State{IV, key[0], key[1], nonce[0], nonce[1]}, paRounds),
		key:   key,
		phase: phaseInitialized,
	}
	s.state[3] ^= key[0]
	s.state[4] ^= key[1]
	return s
}

// AbsorbAssociatedData absorbs the given associated data blocks, then marks the end of the associated data. It should be
// called exactly once per session, before any blocks are encrypted or decrypted. A session which goes straight to
// encryption absorbs an empty list first.
//
// Each call applies the end marker again, so calling it twice with empty lists leaves the session in a different state
// than calling it once. AbsorbAssociatedData panics once encryption or decryption has begun.
func (s *Session) AbsorbAssociatedData(blocks []uint64) {
	s.require("absorb associated data", phaseInitialized, phaseAssociatedData)

	for _, b := range blocks {
		s.state[0] ^= b
		s.state = ascon.Permute(s.state, pbRounds)
	}
	s.state[0] ^= 1
	s.phase = phaseAssociatedData
}

// EncryptBlocks encrypts the plaintext blocks into dst, which must be the same length. It may be called repeatedly to
// encrypt a message in pieces; the ciphertext is the same as if the pieces had been encrypted in one call.
//
// If dst and plaintext differ in length, EncryptBlocks returns ErrInvalidParameters without modifying the session.
func (s *Session) EncryptBlocks(dst, plaintext []uint64) error {
	if len(dst) != len(plaintext) {
		return fmt.Errorf("%w: dst has %d blocks, plaintext has %d", ErrInvalidParameters, len(dst), len(plaintext))
	}

	s.begin("encrypt", phaseEncrypting)
	s.encrypt(dst, plaintext)
	return nil
}

// Finalize returns the session's authentication tag. No further blocks may be encrypted afterward.
func (s *Session) Finalize() Tag {
	s.begin("finalize", phaseEncrypting)
	return s.finalize()
}

// Seal encrypts the plaintext blocks, appends the ciphertext blocks to dst, and returns the resulting slice along with
// the session's authentication tag.
//
// To reuse plaintext's storage for the encrypted output, use plaintext[:0] as dst. Otherwise, the remaining capacity of
// dst must not overlap plaintext.
func (s *Session) Seal(dst, plaintext []uint64) ([]uint64, Tag) {
	s.begin("seal", phaseEncrypting)
	ret, ciphertext := mem.SliceForAppend(dst, len(plaintext))
	s.encrypt(ciphertext, plaintext)
	return ret, s.finalize()
}

// Open decrypts the ciphertext blocks and verifies the tag. If the tag is valid, it appends the plaintext blocks to dst
// and returns the resulting slice; otherwise, the session is rejected and ErrAuthenticationFailed is returned.
//
// To reuse ciphertext's storage for the decrypted output, use ciphertext[:0] as dst. Otherwise, the remaining capacity
// of dst must not overlap ciphertext.
//
// WARNING: Open decrypts into dst's spare capacity before verifying the tag. If the tag is invalid, that region is
// zeroed, and with in-place decryption the original ciphertext is lost.
func (s *Session) Open(dst, ciphertext []uint64, tag Tag) ([]uint64, error) {
	s.begin("open", phaseDecrypting)
	ret, plaintext := mem.SliceForAppend(dst, len(ciphertext))
	s.decrypt(plaintext, ciphertext)

	if !VerifyTag(s.finalize(), tag) {
		clear(plaintext)
		s.phase = phaseRejected
		return nil, ErrAuthenticationFailed
	}

	s.phase = phaseVerified
	return ret, nil
}

// decryptBlocks mirrors EncryptBlocks. It releases plaintext before the tag is verified, so it stays unexported.
func (s *Session) decryptBlocks(dst, ciphertext []uint64) error {
	if len(dst) != len(ciphertext) {
		return fmt.Errorf("%w: dst has %d blocks, ciphertext has %d", ErrInvalidParameters, len(dst), len(ciphertext))
	}

	s.begin("decrypt", phaseDecrypting)
	s.decrypt(dst, ciphertext)
	return nil
}

func (s *Session) encrypt(dst, plaintext []uint64) {
	for i, p := range plaintext {
		if s.blocks > 0 {
			s.state = ascon.Permute(s.state, pbRounds)
		}
		s.state[0] ^= p
		dst[i] = s.state[0]
		s.blocks++
	}
}

func (s *Session) decrypt(dst, ciphertext []uint64) {
	for i, c := range ciphertext {
		if s.blocks > 0 {
			s.state = ascon.Permute(s.state, pbRounds)
		}
		dst[i] = s.state[0] ^ c
		s.state[0] = c
		s.blocks++
	}
}

func (s *Session) finalize() Tag {
	s.state[1] ^= s.key[0]
	s.state[2] ^= s.key[1]
	s.state = ascon.Permute(s.state, paRounds)
	s.state[3] ^= s.key[0]
	s.state[4] ^= s.key[1]
	s.phase = phaseFinalized
	return Tag{s.state[3], s.state[4]}
}

// begin moves the session into the given encrypting or decrypting phase, absorbing empty associated data if none has
// been absorbed.
func (s *Session) begin(op string, next phase) {
	s.require(op, phaseInitialized, phaseAssociatedData, next)
	if s.phase == phaseInitialized {
		s.AbsorbAssociatedData(nil)
	}
	s.phase = next
}

func (s *Session) require(op string, allowed ...phase) {
	for _, p := range allowed {
		if s.phase == p {
			return
		}
	}
	panic(fmt.Sprintf("ascon128: cannot %s: session is %s", op, s.phase))
}

type phase uint8

const (
	phaseUninitialized phase = iota
	phaseInitialized
	phaseAssociatedData
	phaseEncrypting
	phaseDecrypting
	phaseFinalized
	phaseVerified
	phaseRejected
)

func (p phase) String() string {
	switch p {
	case phaseUninitialized:
		return "uninitialized"
	case phaseInitialized:
		return "initialized"
	case phaseAssociatedData:
		return "associated-data"
	case phaseEncrypting:
		return "encrypting"
	case phaseDecrypting:
		return "decrypting"
	case phaseFinalized:
		return "finalized"
	case phaseVerified:
		return "verified"
	case phaseRejected:
		return "rejected"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}
