package cripta

import (
	"math/bits"
	"math/rand"
	"sync"
	"testing"
)

func TestDESKnownAnswers(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		plain  Block
		cipher Block
	}{
		{"textbook", 0x133457799BBCDFF1, 0x0123456789ABCDEF, 0x85E813540F0AB405},
		{"all_zero", 0x0000000000000000, 0x0000000000000000, 0x8CA64DE9C1B123A7},
		{"all_one", 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x7359B2163E4EDC58},
		{"fips81_first_block", 0x0123456789ABCDEF, 0x4E6F772069732074, 0x3FA40E8A984D4815},
		{"variable_plaintext_bit_1", 0x0101010101010101, 0x8000000000000000, 0x95F8A5E5DD31D900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encrypt(tt.plain, tt.key); got != tt.cipher {
				t.Errorf("Encrypt(%016X, %016X) = %016X, want %016X", tt.plain, tt.key, got, tt.cipher)
			}
			if got := Decrypt(tt.cipher, tt.key); got != tt.plain {
				t.Errorf("Decrypt(%016X, %016X) = %016X, want %016X", tt.cipher, tt.key, got, tt.plain)
			}

			des := NewDESCipher(tt.key)
			if got := des.EncryptBlock(tt.plain); got != tt.cipher {
				t.Errorf("EncryptBlock() = %016X, want %016X", got, tt.cipher)
			}
			if got := des.DecryptBlock(tt.cipher); got != tt.plain {
				t.Errorf("DecryptBlock() = %016X, want %016X", got, tt.plain)
			}
		})
	}
}

func TestDESRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		block := Block(rng.Uint64())
		key := Key(rng.Uint64())

		if got := Decrypt(Encrypt(block, key), key); got != block {
			t.Fatalf("round trip failed for block %016X key %016X: got %016X", block, key, got)
		}
	}
}

func differingBytes(a, b Block) int {
	diff := a ^ b
	count := 0
	for i := 0; i < BlockSize; i++ {
		if (diff>>(8*i))&0xFF != 0 {
			count++
		}
	}
	return count
}

func TestDESAvalanche(t *testing.T) {
	const (
		key   Key   = 0x133457799BBCDFF1
		plain Block = 0x0123456789ABCDEF
	)
	base := Encrypt(plain, key)

	t.Run("plaintext_bit", func(t *testing.T) {
		for bit := 0; bit < 64; bit++ {
			got := Encrypt(plain^(1<<bit), key)
			if d := bits.OnesCount64(uint64(got ^ base)); d < 16 {
				t.Errorf("bit %d: only %d output bits changed", bit, d)
			}
			if n := differingBytes(got, base); n < 6 {
				t.Errorf("bit %d: only %d output bytes changed", bit, n)
			}
		}
	})

	t.Run("key_bit", func(t *testing.T) {
		for bit := 0; bit < 64; bit++ {
			got := Encrypt(plain, key^(1<<bit))
			// Bit 0 of every key byte is a parity position that PC-1 skips.
			if bit%8 == 0 {
				if got != base {
					t.Errorf("parity bit %d changed the output", bit)
				}
				continue
			}
			if d := bits.OnesCount64(uint64(got ^ base)); d < 16 {
				t.Errorf("bit %d: only %d output bits changed", bit, d)
			}
			if n := differingBytes(got, base); n < 6 {
				t.Errorf("bit %d: only %d output bytes changed", bit, n)
			}
		}
	})
}

func TestDESCipherConcurrentUse(t *testing.T) {
	des := NewDESCipher(0x133457799BBCDFF1)

	var wg sync.WaitGroup
	errs := make(chan Block, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if got := des.EncryptBlock(0x0123456789ABCDEF); got != 0x85E813540F0AB405 {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent EncryptBlock() = %016X", got)
	}
}

func BenchmarkEncrypt(b *testing.B) {
	des := NewDESCipher(0x133457799BBCDFF1)
	block := Block(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		block = des.EncryptBlock(block)
	}
}
