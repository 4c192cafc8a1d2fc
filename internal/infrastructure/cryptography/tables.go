package cryptography

// This file generates the fixed Rijndael lookup tables at package init:
// forward/inverse S-boxes, the round-constant powers of x, and the four
// rotated T-tables per direction that fuse SubBytes with (Inv)MixColumns
// into one 32-bit lookup per state byte.
//
// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

// AES works over binary polynomials (polynomials over GF(2)) modulo the
// irreducible polynomial x⁸ + x⁴ + x³ + x + 1. Addition is xor; reduction is
// xor with poly whenever a 0x100 bit appears.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// mul multiplies b and c as GF(2) polynomials modulo poly.
func mul(b, c uint32) uint32 {
	i := b
	j := c
	s := uint32(0)
	for k := uint32(1); k < 0x100 && j != 0; k <<= 1 {
		// Invariant: k == 1<<n, i == b * xⁿ
		if j&k != 0 {
			s ^= i
			j ^= k
		}
		i <<= 1
		if i&0x100 != 0 {
			i ^= poly
		}
	}
	return s
}

// powx holds the round-constant sequence: powers of x = 0x02 in GF(2⁸).
var powx = func() (p [16]byte) {
	x := uint32(1)
	for i := range p {
		p[i] = byte(x)
		x = mul(x, 2)
	}
	return p
}()

// sbox is the FIPS-197 byte-substitution permutation: the multiplicative
// inverse in GF(2⁸) (0 maps to 0) composed with a fixed affine transform.
var sbox = func() (s [256]byte) {
	for i := 0; i < 256; i++ {
		inv := gfInverse(byte(i))
		s[i] = affine(inv)
	}
	return s
}()

// invSbox is the inverse permutation of sbox.
var invSbox = func() (inv [256]byte) {
	for i := 0; i < 256; i++ {
		inv[sbox[i]] = byte(i)
	}
	return inv
}()

// gfInverse returns the multiplicative inverse of a in GF(2⁸), with 0
// mapping to 0. Computed as a^254 by repeated squaring and multiplication.
func gfInverse(a byte) byte {
	if a == 0 {
		return 0
	}
	// a^254 = a^2 · a^4 · a^8 · a^16 · a^32 · a^64 · a^128
	sq := mul(uint32(a), uint32(a))
	res := sq
	for i := 0; i < 6; i++ {
		sq = mul(sq, sq)
		res = mul(res, sq)
	}
	return byte(res)
}

// affine applies the FIPS-197 affine transform over GF(2) to b.
func affine(b byte) byte {
	rot := func(x byte, n uint) byte { return x<<n | x>>(8-n) }
	return b ^ rot(b, 1) ^ rot(b, 2) ^ rot(b, 3) ^ rot(b, 4) ^ 0x63
}

// te holds the four encryption T-tables. te[0][i] packs the MixColumns
// products of sbox[i] as a big-endian word {2s, s, s, 3s}; te[1..3] are byte
// rotations of te[0] covering the remaining byte positions.
var te = func() (t [4][256]uint32) {
	for i := 0; i < 256; i++ {
		s := uint32(sbox[i])
		s2 := mul(s, 2)
		s3 := mul(s, 3)
		w := s2<<24 | s<<16 | s<<8 | s3
		for j := 0; j < 4; j++ {
			t[j][i] = w
			w = w<<24 | w>>8
		}
	}
	return t
}()

// td holds the four decryption T-tables: InvMixColumns products of the
// inverse S-box, {14s, 9s, 13s, 11s} big-endian, rotated per byte position.
var td = func() (t [4][256]uint32) {
	for i := 0; i < 256; i++ {
		s := uint32(invSbox[i])
		w := mul(s, 0xe)<<24 | mul(s, 0x9)<<16 | mul(s, 0xd)<<8 | mul(s, 0xb)
		for j := 0; j < 4; j++ {
			t[j][i] = w
			w = w<<24 | w>>8
		}
	}
	return t
}()
