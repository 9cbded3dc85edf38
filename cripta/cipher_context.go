package cripta

import "fmt"

type CipherMode int

const (
	CipherModeECB CipherMode = iota
	CipherModeCBC
)

func (m CipherMode) String() string {
	switch m {
	case CipherModeECB:
		return "ecb"
	case CipherModeCBC:
		return "cbc"
	default:
		return fmt.Sprintf("CipherMode(%d)", int(m))
	}
}

func ParseCipherMode(mode string) (CipherMode, error) {
	switch mode {
	case "ecb":
		return CipherModeECB, nil
	case "cbc":
		return CipherModeCBC, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCipherMode, mode)
	}
}

// CipherContext applies a block cipher to a sequence of blocks in one
// mode. It holds no state between calls: every Encrypt or Decrypt starts
// the chain from iv again.
type CipherContext struct {
	cipher IBlockCipher
	mode   CipherMode
	iv     Block
}

func NewCipherContext(cipher IBlockCipher, mode CipherMode, iv Block) (*CipherContext, error) {
	if cipher == nil {
		return nil, ErrNilCipher
	}
	if mode != CipherModeECB && mode != CipherModeCBC {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCipherMode, mode)
	}

	return &CipherContext{
		cipher: cipher,
		mode:   mode,
		iv:     iv,
	}, nil
}

func (ctx *CipherContext) GetMode() CipherMode {
	return ctx.mode
}

func (ctx *CipherContext) GetIV() Block {
	return ctx.iv
}

func (ctx *CipherContext) Encrypt(plainBlocks []Block) []Block {
	if ctx.mode == CipherModeECB {
		return encryptECB(ctx.cipher, plainBlocks)
	}
	return encryptCBC(ctx.cipher, plainBlocks, ctx.iv)
}

func (ctx *CipherContext) Decrypt(cipherBlocks []Block) []Block {
	if ctx.mode == CipherModeECB {
		return decryptECB(ctx.cipher, cipherBlocks)
	}
	return decryptCBC(ctx.cipher, cipherBlocks, ctx.iv)
}

// CBCEncrypt chains blocks under key starting from iv. The result has the
// same length as blocks.
func CBCEncrypt(blocks []Block, key Key, iv Block) []Block {
	return encryptCBC(NewDESCipher(key), blocks, iv)
}

// CBCDecrypt reverses CBCEncrypt.
func CBCDecrypt(blocks []Block, key Key, iv Block) []Block {
	return decryptCBC(NewDESCipher(key), blocks, iv)
}

func ECBEncrypt(blocks []Block, key Key) []Block {
	return encryptECB(NewDESCipher(key), blocks)
}

func ECBDecrypt(blocks []Block, key Key) []Block {
	return decryptECB(NewDESCipher(key), blocks)
}

func encryptCBC(cipher IBlockCipher, plainBlocks []Block, iv Block) []Block {
	cipherBlocks := make([]Block, len(plainBlocks))

	previous := iv
	for i, block := range plainBlocks {
		previous = cipher.EncryptBlock(block ^ previous)
		cipherBlocks[i] = previous
	}

	return cipherBlocks
}

func decryptCBC(cipher IBlockCipher, cipherBlocks []Block, iv Block) []Block {
	plainBlocks := make([]Block, len(cipherBlocks))

	previous := iv
	for i, block := range cipherBlocks {
		plainBlocks[i] = cipher.DecryptBlock(block) ^ previous
		previous = block
	}

	return plainBlocks
}

func encryptECB(cipher IBlockCipher, plainBlocks []Block) []Block {
	cipherBlocks := make([]Block, len(plainBlocks))
	for i, block := range plainBlocks {
		cipherBlocks[i] = cipher.EncryptBlock(block)
	}
	return cipherBlocks
}

func decryptECB(cipher IBlockCipher, cipherBlocks []Block) []Block {
	plainBlocks := make([]Block, len(cipherBlocks))
	for i, block := range cipherBlocks {
		plainBlocks[i] = cipher.DecryptBlock(block)
	}
	return plainBlocks
}
