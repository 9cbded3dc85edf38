package cripta

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// BlockPolicy decides what happens to the last bytes of a stream whose
// length is not a multiple of BlockSize.
type BlockPolicy int

const (
	// BlockPolicyZeroFill pads the final partial block with zero bytes on
	// the right.
	BlockPolicyZeroFill BlockPolicy = iota
	// BlockPolicyTruncate drops the final partial block.
	BlockPolicyTruncate
	// BlockPolicyLegacy always yields len/8+1 blocks. The bytes of the final
	// partial block are right-aligned, so its high bytes are zero, and a
	// stream of exactly n*8 bytes gets an extra all-zero block.
	BlockPolicyLegacy
)

var blockPolicyNames = map[BlockPolicy]string{
	BlockPolicyZeroFill: "zero-fill",
	BlockPolicyTruncate: "truncate",
	BlockPolicyLegacy:   "legacy",
}

func (p BlockPolicy) String() string {
	if name, ok := blockPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("BlockPolicy(%d)", int(p))
}

func ParseBlockPolicy(name string) (BlockPolicy, error) {
	for policy, policyName := range blockPolicyNames {
		if policyName == name {
			return policy, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBlockPolicy, name)
}

// SplitBlocks cuts data into big-endian 64-bit blocks.
func SplitBlocks(data []uint8, policy BlockPolicy) ([]Block, error) {
	full := len(data) / BlockSize
	tail := data[full*BlockSize:]

	var blocks []Block
	switch policy {
	case BlockPolicyZeroFill:
		blocks = make([]Block, 0, full+1)
		blocks = appendFullBlocks(blocks, data[:full*BlockSize])
		if len(tail) > 0 {
			last := make([]uint8, BlockSize)
			copy(last, tail)
			blocks = append(blocks, Block(binary.BigEndian.Uint64(last)))
		}

	case BlockPolicyTruncate:
		blocks = make([]Block, 0, full)
		blocks = appendFullBlocks(blocks, data[:full*BlockSize])

	case BlockPolicyLegacy:
		blocks = make([]Block, 0, full+1)
		blocks = appendFullBlocks(blocks, data[:full*BlockSize])
		var last Block
		for _, b := range tail {
			last = last<<8 | Block(b)
		}
		blocks = append(blocks, last)

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBlockPolicy, policy)
	}

	return blocks, nil
}

func appendFullBlocks(blocks []Block, data []uint8) []Block {
	for i := 0; i+BlockSize <= len(data); i += BlockSize {
		blocks = append(blocks, Block(binary.BigEndian.Uint64(data[i:i+BlockSize])))
	}
	return blocks
}

// JoinBlocks writes every block as 8 big-endian bytes.
func JoinBlocks(blocks []Block) []uint8 {
	out := make([]uint8, len(blocks)*BlockSize)
	for i, block := range blocks {
		binary.BigEndian.PutUint64(out[i*BlockSize:], uint64(block))
	}
	return out
}

// KeyFromText packs the bytes of text into a 64-bit value, last byte lowest.
// Shorter input ends up left-padded with zero bytes.
func KeyFromText(text string) (Key, error) {
	if len(text) > BlockSize {
		return 0, fmt.Errorf("%w: got %d bytes", ErrKeyTooLong, len(text))
	}

	var key Key
	for i := 0; i < len(text); i++ {
		key = key<<8 | Key(text[i])
	}
	return key, nil
}

func ParseKeyHex(hexStr string) (Key, error) {
	if len(hexStr) != 2*BlockSize {
		return 0, fmt.Errorf("%w: got %d digits", ErrInvalidKeyHex, len(hexStr))
	}

	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidKeyHex, err)
	}

	return Key(binary.BigEndian.Uint64(data)), nil
}
