package cryptography

import (
	"encoding/binary"

	"block_cipher_service/internal/domain/cipher"
)

// EncryptBlock transforms exactly one 16-byte block from src into dst using
// an encryption-oriented schedule. dst and src may alias. The transform never
// resizes or reinterprets block length; short slices are rejected.
func (s *Schedule) EncryptBlock(dst, src []byte) error {
	if len(src) < cipher.BlockSize || len(dst) < cipher.BlockSize {
		return cipher.ErrInvalidBlockLength
	}
	if s.direction != Encrypt {
		return cipher.ErrScheduleMismatch
	}
	encryptBlockGeneric(s.words, dst, src)
	return nil
}

// DecryptBlock is the inverse of EncryptBlock and requires a
// decryption-oriented schedule.
func (s *Schedule) DecryptBlock(dst, src []byte) error {
	if len(src) < cipher.BlockSize || len(dst) < cipher.BlockSize {
		return cipher.ErrInvalidBlockLength
	}
	if s.direction != Decrypt {
		return cipher.ErrScheduleMismatch
	}
	decryptBlockGeneric(s.words, dst, src)
	return nil
}

// encryptBlockGeneric applies the table-driven round pipeline: AddRoundKey,
// rounds-1 full T-table rounds, then a final SubBytes/ShiftRows round via the
// plain S-box.
func encryptBlockGeneric(xk []uint32, dst, src []byte) {
	s0 := binary.BigEndian.Uint32(src[0:4])
	s1 := binary.BigEndian.Uint32(src[4:8])
	s2 := binary.BigEndian.Uint32(src[8:12])
	s3 := binary.BigEndian.Uint32(src[12:16])

	s0 ^= xk[0]
	s1 ^= xk[1]
	s2 ^= xk[2]
	s3 ^= xk[3]

	var t0, t1, t2, t3 uint32
	nr := len(xk)/4 - 2
	k := 4
	for r := 0; r < nr; r++ {
		t0 = xk[k+0] ^ te[0][uint8(s0>>24)] ^ te[1][uint8(s1>>16)] ^ te[2][uint8(s2>>8)] ^ te[3][uint8(s3)]
		t1 = xk[k+1] ^ te[0][uint8(s1>>24)] ^ te[1][uint8(s2>>16)] ^ te[2][uint8(s3>>8)] ^ te[3][uint8(s0)]
		t2 = xk[k+2] ^ te[0][uint8(s2>>24)] ^ te[1][uint8(s3>>16)] ^ te[2][uint8(s0>>8)] ^ te[3][uint8(s1)]
		t3 = xk[k+3] ^ te[0][uint8(s3>>24)] ^ te[1][uint8(s0>>16)] ^ te[2][uint8(s1>>8)] ^ te[3][uint8(s2)]
		k += 4
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	// Final round: SubBytes and ShiftRows only, no MixColumns.
	s0 = uint32(sbox[t0>>24])<<24 | uint32(sbox[t1>>16&0xff])<<16 | uint32(sbox[t2>>8&0xff])<<8 | uint32(sbox[t3&0xff])
	s1 = uint32(sbox[t1>>24])<<24 | uint32(sbox[t2>>16&0xff])<<16 | uint32(sbox[t3>>8&0xff])<<8 | uint32(sbox[t0&0xff])
	s2 = uint32(sbox[t2>>24])<<24 | uint32(sbox[t3>>16&0xff])<<16 | uint32(sbox[t0>>8&0xff])<<8 | uint32(sbox[t1&0xff])
	s3 = uint32(sbox[t3>>24])<<24 | uint32(sbox[t0>>16&0xff])<<16 | uint32(sbox[t1>>8&0xff])<<8 | uint32(sbox[t2&0xff])

	s0 ^= xk[k+0]
	s1 ^= xk[k+1]
	s2 ^= xk[k+2]
	s3 ^= xk[k+3]

	binary.BigEndian.PutUint32(dst[0:4], s0)
	binary.BigEndian.PutUint32(dst[4:8], s1)
	binary.BigEndian.PutUint32(dst[8:12], s2)
	binary.BigEndian.PutUint32(dst[12:16], s3)
}

// decryptBlockGeneric mirrors encryptBlockGeneric with the inverse S-box and
// inverse T-tables. The schedule's round-key groups are already stored in
// application order for decryption.
func decryptBlockGeneric(xk []uint32, dst, src []byte) {
	s0 := binary.BigEndian.Uint32(src[0:4])
	s1 := binary.BigEndian.Uint32(src[4:8])
	s2 := binary.BigEndian.Uint32(src[8:12])
	s3 := binary.BigEndian.Uint32(src[12:16])

	s0 ^= xk[0]
	s1 ^= xk[1]
	s2 ^= xk[2]
	s3 ^= xk[3]

	var t0, t1, t2, t3 uint32
	nr := len(xk)/4 - 2
	k := 4
	for r := 0; r < nr; r++ {
		t0 = xk[k+0] ^ td[0][uint8(s0>>24)] ^ td[1][uint8(s3>>16)] ^ td[2][uint8(s2>>8)] ^ td[3][uint8(s1)]
		t1 = xk[k+1] ^ td[0][uint8(s1>>24)] ^ td[1][uint8(s0>>16)] ^ td[2][uint8(s3>>8)] ^ td[3][uint8(s2)]
		t2 = xk[k+2] ^ td[0][uint8(s2>>24)] ^ td[1][uint8(s1>>16)] ^ td[2][uint8(s0>>8)] ^ td[3][uint8(s3)]
		t3 = xk[k+3] ^ td[0][uint8(s3>>24)] ^ td[1][uint8(s2>>16)] ^ td[2][uint8(s1>>8)] ^ td[3][uint8(s0)]
		k += 4
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	// Final round: InvSubBytes and InvShiftRows only.
	s0 = uint32(invSbox[t0>>24])<<24 | uint32(invSbox[t3>>16&0xff])<<16 | uint32(invSbox[t2>>8&0xff])<<8 | uint32(invSbox[t1&0xff])
	s1 = uint32(invSbox[t1>>24])<<24 | uint32(invSbox[t0>>16&0xff])<<16 | uint32(invSbox[t3>>8&0xff])<<8 | uint32(invSbox[t2&0xff])
	s2 = uint32(invSbox[t2>>24])<<24 | uint32(invSbox[t1>>16&0xff])<<16 | uint32(invSbox[t0>>8&0xff])<<8 | uint32(invSbox[t3&0xff])
	s3 = uint32(invSbox[t3>>24])<<24 | uint32(invSbox[t2>>16&0xff])<<16 | uint32(invSbox[t1>>8&0xff])<<8 | uint32(invSbox[t0&0xff])

	s0 ^= xk[k+0]
	s1 ^= xk[k+1]
	s2 ^= xk[k+2]
	s3 ^= xk[k+3]

	binary.BigEndian.PutUint32(dst[0:4], s0)
	binary.BigEndian.PutUint32(dst[4:8], s1)
	binary.BigEndian.PutUint32(dst[8:12], s2)
	binary.BigEndian.PutUint32(dst[12:16], s3)
}
