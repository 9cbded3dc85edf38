package cripta

// Block is one 64-bit DES block; bit 1 in DES notation is the most
// significant bit.
type Block uint64

// Key is a raw 64-bit DES key. Parity bits are not checked.
type Key uint64

const (
	BlockSize = 8
	Rounds    = 16
)

var IP = []uint8{
	58, 50, 42, 34, 26, 18, 10, 2,
	60, 52, 44, 36, 28, 20, 12, 4,
	62, 54, 46, 38, 30, 22, 14, 6,
	64, 56, 48, 40, 32, 24, 16, 8,
	57, 49, 41, 33, 25, 17, 9, 1,
	59, 51, 43, 35, 27, 19, 11, 3,
	61, 53, 45, 37, 29, 21, 13, 5,
	63, 55, 47, 39, 31, 23, 15, 7,
}

var FP = []uint8{
	40, 8, 48, 16, 56, 24, 64, 32,
	39, 7, 47, 15, 55, 23, 63, 31,
	38, 6, 46, 14, 54, 22, 62, 30,
	37, 5, 45, 13, 53, 21, 61, 29,
	36, 4, 44, 12, 52, 20, 60, 28,
	35, 3, 43, 11, 51, 19, 59, 27,
	34, 2, 42, 10, 50, 18, 58, 26,
	33, 1, 41, 9, 49, 17, 57, 25,
}

var desNetwork = NewFeistelNetwork(DESRoundFunction{}, Rounds)

var (
	_ IKeySchedule   = DESKeySchedule{}
	_ IRoundFunction = DESRoundFunction{}
	_ IBlockCipher   = (*DESCipher)(nil)
)

// DESCipher is DES bound to one key. The round keys are derived once in
// NewDESCipher and never change, so a DESCipher may be shared between
// goroutines.
type DESCipher struct {
	encryptKeys RoundKeys
	decryptKeys RoundKeys
}

func NewDESCipher(key Key) *DESCipher {
	roundKeys := DeriveRoundKeys(key)
	return &DESCipher{
		encryptKeys: roundKeys,
		decryptKeys: roundKeys.Reversed(),
	}
}

func (des *DESCipher) RoundKeys() RoundKeys {
	return des.encryptKeys
}

func (des *DESCipher) EncryptBlock(plainBlock Block) Block {
	return transform(plainBlock, des.encryptKeys)
}

func (des *DESCipher) DecryptBlock(cipherBlock Block) Block {
	return transform(cipherBlock, des.decryptKeys)
}

// Encrypt encrypts a single block under key.
func Encrypt(block Block, key Key) Block {
	return transform(block, DeriveRoundKeys(key))
}

// Decrypt is the inverse of Encrypt.
func Decrypt(block Block, key Key) Block {
	return transform(block, DeriveRoundKeys(key).Reversed())
}

func transform(block Block, roundKeys RoundKeys) Block {
	permuted := permute(uint64(block), IP, 64)
	preOutput := desNetwork.Transform(permuted, roundKeys)
	return Block(permute(preOutput, FP, 64))
}
