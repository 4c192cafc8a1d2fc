package cipher

// Valid raw AES key sizes in bytes.
const (
	Key128Bit int = 16
	Key192Bit int = 24
	Key256Bit int = 32
)

// BlockSize is the fixed cipher block size in bytes.
const BlockSize int = 16

// Round counts per key size.
const (
	Rounds128 int = 10
	Rounds192 int = 12
	Rounds256 int = 14
)

// MaxRounds is the round count for the largest supported key size. Cooked-key
// buffers are sized for it regardless of the actual key size, so callers can
// allocate uniformly.
const MaxRounds int = Rounds256

// maxScheduleWords is the number of 32-bit round-key words for a 256-bit key.
const maxScheduleWords = 4 * (MaxRounds + 1)

// CookedKeySize is the fixed capacity of a cooked-key buffer: the full
// round-key schedule as big-endian 32-bit words plus one trailing byte that
// records the round count.
const CookedKeySize int = 4*maxScheduleWords + 1

// CookedKeyRoundsOffset is the offset of the round-count byte inside a
// cooked-key buffer.
const CookedKeyRoundsOffset int = 4 * maxScheduleWords
