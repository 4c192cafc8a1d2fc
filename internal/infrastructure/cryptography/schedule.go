package cryptography

import (
	"encoding/binary"

	"block_cipher_service/internal/domain/cipher"
)

// Direction selects the orientation a schedule was expanded for.
type Direction int

// Schedule orientations.
const (
	Encrypt Direction = iota
	Decrypt
)

// Schedule is an expanded round-key schedule: an ordered sequence of 32-bit
// words paired with the round count they were derived for. A Schedule is
// immutable once constructed and may be shared across goroutines.
type Schedule struct {
	words     []uint32
	rounds    int
	direction Direction
}

// Rounds returns the round count the schedule was expanded for.
func (s *Schedule) Rounds() int {
	return s.rounds
}

// Direction returns the orientation the schedule was expanded for.
func (s *Schedule) Direction() Direction {
	return s.direction
}

// roundsForKeySize maps a raw key length in bytes to the AES round count, or
// 0 for unsupported lengths.
func roundsForKeySize(keyLen int) int {
	switch keyLen {
	case cipher.Key128Bit:
		return cipher.Rounds128
	case cipher.Key192Bit:
		return cipher.Rounds192
	case cipher.Key256Bit:
		return cipher.Rounds256
	default:
		return 0
	}
}

// NewEncryptSchedule expands a raw 16, 24 or 32-byte key into an
// encryption-oriented schedule. Any other key length yields ErrInvalidKeySize.
func NewEncryptSchedule(rawKey []byte) (*Schedule, error) {
	rounds := roundsForKeySize(len(rawKey))
	if rounds == 0 {
		return nil, cipher.ErrInvalidKeySize
	}
	return &Schedule{
		words:     expandEncrypt(rawKey, rounds),
		rounds:    rounds,
		direction: Encrypt,
	}, nil
}

// NewDecryptSchedule expands a raw key into a decryption-oriented schedule:
// the encryption word sequence with its round-key groups reversed and
// InvMixColumns applied to every group except the first and the last, so the
// decryption round function can use the inverse T-tables directly.
func NewDecryptSchedule(rawKey []byte) (*Schedule, error) {
	rounds := roundsForKeySize(len(rawKey))
	if rounds == 0 {
		return nil, cipher.ErrInvalidKeySize
	}
	return &Schedule{
		words:     invertSchedule(expandEncrypt(rawKey, rounds)),
		rounds:    rounds,
		direction: Decrypt,
	}, nil
}

// subw applies the S-box to each byte of w.
func subw(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// rotw rotates w left by one byte.
func rotw(w uint32) uint32 {
	return w<<8 | w>>24
}

// expandEncrypt runs the FIPS-197 key-expansion recurrence, producing
// 4*(rounds+1) big-endian words from the raw key. The caller has already
// validated the key length.
func expandEncrypt(rawKey []byte, rounds int) []uint32 {
	nk := len(rawKey) / 4
	words := make([]uint32, 4*(rounds+1))

	for i := 0; i < nk; i++ {
		words[i] = binary.BigEndian.Uint32(rawKey[4*i:])
	}
	for i := nk; i < len(words); i++ {
		t := words[i-1]
		switch {
		case i%nk == 0:
			t = subw(rotw(t)) ^ uint32(powx[i/nk-1])<<24
		case nk > 6 && i%nk == 4:
			// 256-bit keys substitute every fourth intermediate word as well,
			// without rotation or round constant.
			t = subw(t)
		}
		words[i] = words[i-nk] ^ t
	}
	return words
}

// invertSchedule turns an encryption word sequence into its decryption
// orientation: round-key groups in reverse order, interior groups passed
// through InvMixColumns. The transform is computed as td(sbox(w)) since the
// decryption T-tables already compose InvSubBytes with InvMixColumns.
func invertSchedule(enc []uint32) []uint32 {
	n := len(enc)
	dec := make([]uint32, n)
	for i := 0; i < n; i += 4 {
		ei := n - i - 4
		for j := 0; j < 4; j++ {
			w := enc[ei+j]
			if i > 0 && i+4 < n {
				w = td[0][sbox[w>>24]] ^
					td[1][sbox[w>>16&0xff]] ^
					td[2][sbox[w>>8&0xff]] ^
					td[3][sbox[w&0xff]]
			}
			dec[i+j] = w
		}
	}
	return dec
}
