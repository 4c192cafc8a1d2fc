package cryptography

import (
	"encoding/binary"

	"block_cipher_service/internal/domain/cipher"
)

// A cooked key is the flat interchange form of a Schedule: a fixed 241-byte
// buffer holding 60 big-endian 32-bit round-key words followed by one byte
// recording the round count. The capacity is sized for 256-bit keys
// regardless of the actual key size; unused trailing words stay zero.

// CookEncryptKey expands a raw key into an encryption-oriented cooked-key
// buffer. Returns ErrInvalidKeySize for key lengths other than 16, 24 or 32.
func CookEncryptKey(rawKey []byte) ([]byte, error) {
	schedule, err := NewEncryptSchedule(rawKey)
	if err != nil {
		return nil, err
	}
	return packCookedKey(schedule), nil
}

// CookDecryptKey expands a raw key into a decryption-oriented cooked-key
// buffer.
func CookDecryptKey(rawKey []byte) ([]byte, error) {
	schedule, err := NewDecryptSchedule(rawKey)
	if err != nil {
		return nil, err
	}
	return packCookedKey(schedule), nil
}

// CookEncryptKeyCompat behaves like CookEncryptKey except that an invalid key
// size yields an all-zero cooked-key buffer instead of an error, matching the
// legacy behavior of the original native binding.
//
// Deprecated-by-design compatibility shim: the zero buffer masks a real error
// and is unsafe as a default. New callers should use CookEncryptKey.
func CookEncryptKeyCompat(rawKey []byte) []byte {
	cooked, err := CookEncryptKey(rawKey)
	if err != nil {
		return make([]byte, cipher.CookedKeySize)
	}
	return cooked
}

// CookDecryptKeyCompat is the decryption-oriented counterpart of
// CookEncryptKeyCompat.
func CookDecryptKeyCompat(rawKey []byte) []byte {
	cooked, err := CookDecryptKey(rawKey)
	if err != nil {
		return make([]byte, cipher.CookedKeySize)
	}
	return cooked
}

// EncryptAt reads one 16-byte block from src at srcOffset and writes its
// encryption to dst at dstOffset, using the cooked key found in cookedKey at
// keyOffset. All accesses are bounds-checked; bytes outside the 16-byte
// destination window are left untouched. src and dst may alias.
func EncryptAt(cookedKey []byte, keyOffset int, src []byte, srcOffset int, dst []byte, dstOffset int) error {
	words, err := parseCookedKey(cookedKey, keyOffset)
	if err != nil {
		return err
	}
	if err := checkBlockWindow(src, srcOffset); err != nil {
		return err
	}
	if err := checkBlockWindow(dst, dstOffset); err != nil {
		return err
	}
	encryptBlockGeneric(words, dst[dstOffset:], src[srcOffset:])
	return nil
}

// DecryptAt is the inverse of EncryptAt and requires a decryption-oriented
// cooked key.
func DecryptAt(cookedKey []byte, keyOffset int, src []byte, srcOffset int, dst []byte, dstOffset int) error {
	words, err := parseCookedKey(cookedKey, keyOffset)
	if err != nil {
		return err
	}
	if err := checkBlockWindow(src, srcOffset); err != nil {
		return err
	}
	if err := checkBlockWindow(dst, dstOffset); err != nil {
		return err
	}
	decryptBlockGeneric(words, dst[dstOffset:], src[srcOffset:])
	return nil
}

// packCookedKey flattens a schedule into a fresh cooked-key buffer.
func packCookedKey(s *Schedule) []byte {
	cooked := make([]byte, cipher.CookedKeySize)
	for i, w := range s.words {
		binary.BigEndian.PutUint32(cooked[4*i:], w)
	}
	cooked[cipher.CookedKeyRoundsOffset] = byte(s.rounds)
	return cooked
}

// parseCookedKey validates a cooked-key buffer at keyOffset and returns the
// round-key words its stored round count describes. A round count that does
// not name a valid schedule is a precondition violation surfaced as
// ErrScheduleMismatch rather than silently truncated.
func parseCookedKey(cookedKey []byte, keyOffset int) ([]uint32, error) {
	if keyOffset < 0 || keyOffset > len(cookedKey) {
		return nil, cipher.ErrOffsetOutOfRange
	}
	buf := cookedKey[keyOffset:]
	if len(buf) < cipher.CookedKeySize {
		return nil, cipher.ErrOffsetOutOfRange
	}
	rounds := int(buf[cipher.CookedKeyRoundsOffset])
	switch rounds {
	case cipher.Rounds128, cipher.Rounds192, cipher.Rounds256:
	default:
		return nil, cipher.ErrScheduleMismatch
	}
	words := make([]uint32, 4*(rounds+1))
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[4*i:])
	}
	return words, nil
}

// checkBlockWindow verifies that buf holds a full block at offset.
func checkBlockWindow(buf []byte, offset int) error {
	if offset < 0 || offset > len(buf) {
		return cipher.ErrOffsetOutOfRange
	}
	if len(buf)-offset < cipher.BlockSize {
		return cipher.ErrInvalidBlockLength
	}
	return nil
}
