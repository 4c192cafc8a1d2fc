package cipher

// BlockProcessor handles Rijndael/AES key cooking and single-block operations.
// It is a cipher primitive, not a complete encryption API: padding, chaining
// modes, IV handling and key storage are layered on top by callers.
//
// The same contract is intended to front both the pure table-driven
// implementation and any optimized (hardware or native-bound) implementation
// of the identical algorithm.
type BlockProcessor interface {
	// GenerateKey generates a random raw key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// CookEncryptKey expands a raw key into a fixed-size cooked-key buffer in
	// encryption orientation. Returns ErrInvalidKeySize for other key lengths.
	CookEncryptKey(rawKey []byte) ([]byte, error)

	// CookDecryptKey expands a raw key into a cooked-key buffer in decryption
	// orientation: the same word sequence with InvMixColumns applied to every
	// interior round-key group.
	CookDecryptKey(rawKey []byte) ([]byte, error)

	// Encrypt transforms exactly one 16-byte block read from src at srcOffset
	// into dst at dstOffset using an encryption-oriented cooked key read at
	// keyOffset. src and dst may alias for in-place operation.
	Encrypt(cookedKey []byte, keyOffset int, src []byte, srcOffset int, dst []byte, dstOffset int) error

	// Decrypt is the inverse of Encrypt and requires a decryption-oriented
	// cooked key.
	Decrypt(cookedKey []byte, keyOffset int, src []byte, srcOffset int, dst []byte, dstOffset int) error
}
