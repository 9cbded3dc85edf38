package cripta

import (
	"math/rand"
	"testing"
)

type xorRoundFunction struct{}

func (xorRoundFunction) Apply(half uint32, roundKey uint64) uint32 {
	return (half*0x9E3779B9 ^ uint32(roundKey)) + uint32(roundKey>>32)
}

func TestFeistelNetworkInverts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, rf := range []IRoundFunction{xorRoundFunction{}, DESRoundFunction{}} {
		network := NewFeistelNetwork(rf, Rounds)

		var roundKeys RoundKeys
		for i := range roundKeys {
			roundKeys[i] = rng.Uint64() & mask48
		}

		for i := 0; i < 50; i++ {
			block := rng.Uint64()
			out := network.Transform(block, roundKeys)
			if got := network.Transform(out, roundKeys.Reversed()); got != block {
				t.Fatalf("%T: Transform inverse = %016X, want %016X", rf, got, block)
			}
		}
	}
}

func TestFeistelNetworkSingleRound(t *testing.T) {
	network := NewFeistelNetwork(xorRoundFunction{}, 1)
	var roundKeys RoundKeys
	roundKeys[0] = 0x5

	// One round: L1 = R0, R1 = L0 ^ f(R0), output R1||L1.
	block := combineHalves(0xAAAAAAAA, 0x1)
	want := combineHalves(0xAAAAAAAA^xorRoundFunction{}.Apply(0x1, 0x5), 0x1)
	if got := network.Transform(block, roundKeys); got != want {
		t.Errorf("Transform() = %016X, want %016X", got, want)
	}
}

func TestNewFeistelNetworkRounds(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, Rounds},
		{-1, Rounds},
		{8, 8},
		{Rounds, Rounds},
		{Rounds + 1, Rounds},
	}
	for _, tt := range tests {
		if got := NewFeistelNetwork(DESRoundFunction{}, tt.in).GetRoundsCount(); got != tt.want {
			t.Errorf("NewFeistelNetwork(%d) rounds = %d, want %d", tt.in, got, tt.want)
		}
	}
}
