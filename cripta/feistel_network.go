package cripta

type FeistelNetwork struct {
	roundFunction IRoundFunction
	roundsCount   int
}

func NewFeistelNetwork(roundFunctionImpl IRoundFunction, roundsCount int) *FeistelNetwork {
	fRoundsCount := roundsCount
	if fRoundsCount <= 0 || fRoundsCount > Rounds {
		fRoundsCount = Rounds
	}

	return &FeistelNetwork{
		roundFunction: roundFunctionImpl,
		roundsCount:   fRoundsCount,
	}
}

func (fn *FeistelNetwork) GetRoundsCount() int {
	return fn.roundsCount
}

func splitBlock(block uint64) (uint32, uint32) {
	return uint32(block >> 32), uint32(block)
}

func combineHalves(left uint32, right uint32) uint64 {
	return uint64(left)<<32 | uint64(right)
}

// Transform runs the rounds over block using roundKeys in the given order
// and returns R‖L, i.e. the halves are not swapped back after the last round.
// Decryption is the same call with the subkeys reversed.
func (fn *FeistelNetwork) Transform(block uint64, roundKeys RoundKeys) uint64 {
	left, right := splitBlock(block)

	for round := 0; round < fn.roundsCount; round++ {
		left, right = right, left^fn.roundFunction.Apply(right, roundKeys[round])
	}

	return combineHalves(right, left)
}
