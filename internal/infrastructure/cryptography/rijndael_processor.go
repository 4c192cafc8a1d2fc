package cryptography

import (
	"crypto/rand"
	"fmt"

	cipherDomain "block_cipher_service/internal/domain/cipher"
	"block_cipher_service/internal/pkg/logger"
)

// rijndaelProcessor struct that implements the BlockProcessor interface
type rijndaelProcessor struct {
	logger logger.Logger
}

// NewRijndaelProcessor creates and returns a new instance of rijndaelProcessor
func NewRijndaelProcessor(logger logger.Logger) (cipherDomain.BlockProcessor, error) {
	return &rijndaelProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random raw key of the specified size.
// Supported sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
func (r *rijndaelProcessor) GenerateKey(keySize int) ([]byte, error) {
	if roundsForKeySize(keySize) == 0 {
		return nil, cipherDomain.ErrInvalidKeySize
	}
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	r.logger.Info("Generated raw block cipher key")
	return key, nil
}

// CookEncryptKey expands a raw key into an encryption-oriented cooked-key buffer.
func (r *rijndaelProcessor) CookEncryptKey(rawKey []byte) ([]byte, error) {
	cooked, err := CookEncryptKey(rawKey)
	if err != nil {
		return nil, fmt.Errorf("failed to cook encryption key: %w", err)
	}
	r.logger.Info("Cooked encryption key schedule")
	return cooked, nil
}

// CookDecryptKey expands a raw key into a decryption-oriented cooked-key buffer.
func (r *rijndaelProcessor) CookDecryptKey(rawKey []byte) ([]byte, error) {
	cooked, err := CookDecryptKey(rawKey)
	if err != nil {
		return nil, fmt.Errorf("failed to cook decryption key: %w", err)
	}
	r.logger.Info("Cooked decryption key schedule")
	return cooked, nil
}

// Encrypt transforms one 16-byte block from src at srcOffset into dst at
// dstOffset using an encryption-oriented cooked key.
func (r *rijndaelProcessor) Encrypt(cookedKey []byte, keyOffset int, src []byte, srcOffset int, dst []byte, dstOffset int) error {
	if err := EncryptAt(cookedKey, keyOffset, src, srcOffset, dst, dstOffset); err != nil {
		return fmt.Errorf("failed to encrypt block: %w", err)
	}
	return nil
}

// Decrypt is the inverse of Encrypt and requires a decryption-oriented cooked key.
func (r *rijndaelProcessor) Decrypt(cookedKey []byte, keyOffset int, src []byte, srcOffset int, dst []byte, dstOffset int) error {
	if err := DecryptAt(cookedKey, keyOffset, src, srcOffset, dst, dstOffset); err != nil {
		return fmt.Errorf("failed to decrypt block: %w", err)
	}
	return nil
}
