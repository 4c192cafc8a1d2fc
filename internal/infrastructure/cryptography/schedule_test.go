//go:build unit
// +build unit

package cryptography

import (
	"encoding/hex"
	"testing"

	"block_cipher_service/internal/domain/cipher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestNewEncryptSchedule(t *testing.T) {
	tests := []struct {
		name       string
		keySize    int
		wantRounds int
	}{
		{"AES-128", 16, 10},
		{"AES-192", 24, 12},
		{"AES-256", 32, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := NewEncryptSchedule(make([]byte, tt.keySize))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRounds, schedule.Rounds())
			assert.Equal(t, Encrypt, schedule.Direction())
			assert.Len(t, schedule.words, 4*(tt.wantRounds+1))
		})
	}
}

func TestNewScheduleInvalidKeySize(t *testing.T) {
	for _, size := range []int{0, 5, 15, 17, 31, 33, 64} {
		_, err := NewEncryptSchedule(make([]byte, size))
		assert.ErrorIs(t, err, cipher.ErrInvalidKeySize, "key size %d", size)

		_, err = NewDecryptSchedule(make([]byte, size))
		assert.ErrorIs(t, err, cipher.ErrInvalidKeySize, "key size %d", size)
	}
}

func TestKeyExpansionKnownAnswer(t *testing.T) {
	// FIPS-197 Appendix A.1: 128-bit key expansion.
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	words := expandEncrypt(key, 10)

	require.Len(t, words, 44)
	assert.Equal(t, uint32(0x2b7e1516), words[0])
	assert.Equal(t, uint32(0xa0fafe17), words[4])
	assert.Equal(t, uint32(0xd014f9a8), words[40])
	assert.Equal(t, uint32(0xb6630ca6), words[43])
}

func TestInvertSchedule(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	enc := expandEncrypt(key, 10)
	dec := invertSchedule(enc)

	require.Len(t, dec, len(enc))

	// First and last round-key groups swap places without InvMixColumns.
	assert.Equal(t, enc[40:44], dec[0:4])
	assert.Equal(t, enc[0:4], dec[40:44])

	// Interior groups are transformed, not copied.
	assert.NotEqual(t, enc[4:8], dec[36:40])
}

func TestScheduleDeterminism(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f1011121314151617")

	first, err := NewDecryptSchedule(key)
	require.NoError(t, err)
	second, err := NewDecryptSchedule(key)
	require.NoError(t, err)

	assert.Equal(t, first.words, second.words)
	assert.Equal(t, first.Rounds(), second.Rounds())
}
