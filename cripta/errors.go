package cripta

import "errors"

var (
	ErrNilCipher          = errors.New("cipher implementation cannot be nil")
	ErrUnknownCipherMode  = errors.New("unknown cipher mode")
	ErrUnknownBlockPolicy = errors.New("unknown block policy")
	ErrKeyTooLong         = errors.New("input is greater than 64 bits")
	ErrInvalidKeyHex      = errors.New("key must be 16 hex digits")
)
