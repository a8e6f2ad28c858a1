package pairing

import "errors"

var (
	ErrInvalidPrivateKey  = errors.New("invalid private key")
	ErrInvalidPublicKey   = errors.New("invalid public key")
	ErrInvalidBlob        = errors.New("invalid blob")
	ErrInvalidChallenge   = errors.New("invalid challenge")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidAddress     = errors.New("invalid bitcoin address")
	ErrIncompleteContext  = errors.New("pairing context is incomplete")
)
