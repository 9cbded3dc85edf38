package cripta

type IKeySchedule interface {
	GenerateRoundKeys(masterKey Key) RoundKeys
}

type IRoundFunction interface {
	Apply(half uint32, roundKey uint64) uint32
}

type IBlockCipher interface {
	EncryptBlock(plainBlock Block) Block
	DecryptBlock(cipherBlock Block) Block
}
