package cripta

const (
	mask28 = uint32(0x0FFFFFFF)
	mask48 = uint64(0xFFFFFFFFFFFF)
)

type DESKeySchedule struct{}

var PC1 = []uint8{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

var PC2 = []uint8{
	14, 17, 11, 24, 1, 5,
	3, 28, 15, 6, 21, 10,
	23, 19, 12, 4, 26, 8,
	16, 7, 27, 20, 13, 2,
	41, 52, 31, 37, 47, 55,
	30, 40, 51, 45, 33, 48,
	44, 49, 39, 56, 34, 53,
	46, 42, 50, 36, 29, 32,
}

var SHIFT_SCHEDULE = [Rounds]uint{
	1, 1, 2, 2, 2, 2, 2, 2,
	1, 2, 2, 2, 2, 2, 2, 1,
}

// RoundKeys holds the 16 DES subkeys in encryption order. Each entry uses
// the low 48 bits.
type RoundKeys [Rounds]uint64

// DeriveRoundKeys runs the DES key schedule. All 64 key bits go through PC-1,
// which never selects the parity positions 8, 16, ..., 64.
func DeriveRoundKeys(key Key) RoundKeys {
	return DESKeySchedule{}.GenerateRoundKeys(key)
}

func (DESKeySchedule) GenerateRoundKeys(masterKey Key) RoundKeys {
	var roundKeys RoundKeys

	permutedKey := permute(uint64(masterKey), PC1, 64)

	c := uint32(permutedKey>>28) & mask28
	d := uint32(permutedKey) & mask28

	for round := 0; round < Rounds; round++ {
		c = rotateLeft28(c, SHIFT_SCHEDULE[round])
		d = rotateLeft28(d, SHIFT_SCHEDULE[round])

		cd := uint64(c)<<28 | uint64(d)
		roundKeys[round] = permute(cd, PC2, 56)
	}

	return roundKeys
}

// Reversed returns the subkeys in decryption order.
func (rk RoundKeys) Reversed() RoundKeys {
	var reversed RoundKeys
	for i := range rk {
		reversed[i] = rk[Rounds-1-i]
	}
	return reversed
}
