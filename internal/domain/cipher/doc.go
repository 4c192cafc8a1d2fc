// Package cipher defines the core interfaces, constants and error values for the
// Rijndael/AES block-cipher engine: raw-key sizes, the cooked-key buffer contract
// and the block processor operations implemented by the cryptography infrastructure.
package cipher
